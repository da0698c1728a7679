package domain

// Email is a notification handed to the mail scheduler
type Email struct {
	From        string   `json:"from"`
	To          []string `json:"to"`
	Bcc         []string `json:"bcc,omitempty"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	CopyToAdmin bool     `json:"copy_to_admin"`
	TaskArgs    []string `json:"task_args,omitempty"`
}
