package domain

// NavLink is one entry of a navigation trail
type NavLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Tab is one tab of the detailed record box
type Tab struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Selected bool   `json:"selected"`
	Enabled  bool   `json:"enabled"`
}

// ErrorEntry is a (code, message) pair shown in an error box
type ErrorEntry struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RequestInfo is the request context reported in an error box.
// Fields that could not be determined hold NotAvailable.
type RequestInfo struct {
	Host      string `json:"host"`
	URI       string `json:"uri"`
	Client    string `json:"client"`
	UserAgent string `json:"user_agent"`
}

// NotAvailable marks request fields that could not be extracted
const NotAvailable = "N/A"
