package task

// RecordUploadTask asks the scheduler to upload a MARCXML file into the record store
type RecordUploadTask struct {
	File       string   `json:"file"`
	Mode       string   `json:"mode"`     // -c correct, -i insert, -r replace
	Priority   int      `json:"priority"` // passed as -P
	SequenceID int64    `json:"sequence_id"`
	Submitter  string   `json:"submitter"`
	Args       []string `json:"args"`
}

func (t *RecordUploadTask) TaskType() string {
	return "RecordUploadTask"
}

func (t *RecordUploadTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}
