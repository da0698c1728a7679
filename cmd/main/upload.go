package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Queue the converted record of a submission for upload in correct mode",
	RunE:  runUpload,
}

var (
	uploadCurdir string
	uploadRefNum string
)

func init() {
	uploadCmd.Flags().StringVar(&uploadCurdir, "curdir", "", "Submission working directory (required)")
	uploadCmd.Flags().StringVar(&uploadRefNum, "rn", "", "Reference number of the record (required)")
	for _, name := range []string{"curdir", "rn"} {
		if err := uploadCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, _ []string) error {
	app, err := loadContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	id, err := app.Uploader.InsertModify(cmd.Context(), uploadCurdir, uploadRefNum)
	if err != nil {
		return err
	}
	cmd.Printf("Queued record upload as task %s\n", id)
	return nil
}
