package main

import (
	"fmt"

	"websubmit/portal/internal/submission"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send submission workflow notifications",
}

var notifyDecisionCmd = &cobra.Command{
	Use:   "decision",
	Short: "Mail the referee's final decision on a blog record deletion",
	RunE:  runNotifyDecision,
}

var notifySubmittedCmd = &cobra.Command{
	Use:   "submitted",
	Short: "Acknowledge a blog record submission to its submitter",
	RunE:  runNotifySubmitted,
}

var (
	notifyCurdir string
	notifyRefNum string
	notifyRecID  int64

	decisionDoctype      string
	decisionCategFormat  string
	decisionFile         string
	decisionCommentsFile string

	submittedTitleFile string
	submittedEmailFile string
)

func init() {
	for _, cmd := range []*cobra.Command{notifyDecisionCmd, notifySubmittedCmd} {
		cmd.Flags().StringVar(&notifyCurdir, "curdir", "", "Submission working directory (required)")
		cmd.Flags().StringVar(&notifyRefNum, "rn", "", "Reference number of the record (required)")
		cmd.Flags().Int64Var(&notifyRecID, "sysno", 0, "Record id")
		for _, name := range []string{"curdir", "rn"} {
			if err := cmd.MarkFlagRequired(name); err != nil {
				panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
			}
		}
	}

	notifyDecisionCmd.Flags().StringVar(&decisionDoctype, "doctype", "", "Document type of the submission (required)")
	notifyDecisionCmd.Flags().StringVar(&decisionCategFormat, "categ-format", "", `Reference pattern locating the category, e.g. "TEST-<CATEG>-.*"`)
	notifyDecisionCmd.Flags().StringVar(&decisionFile, "decision-file", "", "Decision marker file (default \"decision\")")
	notifyDecisionCmd.Flags().StringVar(&decisionCommentsFile, "comments-file", "", "Referee comments marker file (default \"COM\")")
	if err := notifyDecisionCmd.MarkFlagRequired("doctype"); err != nil {
		panic(fmt.Sprintf("failed to mark doctype flag as required: %v", err))
	}

	notifySubmittedCmd.Flags().StringVar(&submittedTitleFile, "title-file", "", "Marker file holding the blog title")
	notifySubmittedCmd.Flags().StringVar(&submittedEmailFile, "email-file", "", "Marker file holding the submitter's address")

	notifyCmd.AddCommand(notifyDecisionCmd, notifySubmittedCmd)
	rootCmd.AddCommand(notifyCmd)
}

func runNotifyDecision(cmd *cobra.Command, _ []string) error {
	app, err := loadContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	note, err := app.Decision.Notify(cmd.Context(), submission.DecisionParams{
		Curdir:          notifyCurdir,
		Doctype:         decisionDoctype,
		RefNum:          notifyRefNum,
		RecID:           notifyRecID,
		CategoryPattern: decisionCategFormat,
		DecisionFile:    decisionFile,
		CommentsFile:    decisionCommentsFile,
	})
	if err != nil {
		return err
	}
	printNotification(cmd, note)
	return nil
}

func runNotifySubmitted(cmd *cobra.Command, _ []string) error {
	app, err := loadContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	note, err := app.Submitted.Notify(cmd.Context(), submission.SubmittedParams{
		Curdir:    notifyCurdir,
		RefNum:    notifyRefNum,
		RecID:     notifyRecID,
		TitleFile: submittedTitleFile,
		EmailFile: submittedEmailFile,
	})
	if err != nil {
		return err
	}
	printNotification(cmd, note)
	return nil
}

func printNotification(cmd *cobra.Command, note *submission.Notification) {
	if !note.Dispatched {
		cmd.Printf("No recipients for %q, nothing sent\n", note.Email.Subject)
		return
	}
	cmd.Printf("Scheduled %q as task %s (sequence %d)\n", note.Email.Subject, note.TaskID, note.SequenceID)
}
