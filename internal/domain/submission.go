package domain

// Decision is the referee verdict read from the decision marker file
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Approved reports whether the referee approved the submission.
// Every value other than "approve" counts as a rejection.
func (d Decision) Approved() bool {
	return d == DecisionApprove
}

func (d Decision) String() string {
	return string(d)
}

// UnknownCategory is used when a reference number does not carry a category
const UnknownCategory = "unknown"

// RoleUser is a member of an access-control role
type RoleUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Field tags of the bibliographic record read by the notifiers and templates
const (
	TagTitle      = "245__a"
	TagURL        = "520__u"
	TagCollection = "980__a"
)
