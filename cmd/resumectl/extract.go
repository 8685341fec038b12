package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-extractor/internal/records"
)

func newExtractCmd(root *rootOptions) *cobra.Command {
	var textFile string
	cmd := &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Extract a record from a resume and append it to the log",
		Long:  "Extracts name, email, phone, skills and work experience from a PDF resume (or a plain-text file given with --text), prints the record as JSON and appends it to the record log.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if textFile == "" && len(args) == 0 {
				return errors.New("a PDF file or --text is required")
			}

			ctx := cmd.Context()
			app, err := root.buildApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			var res records.UploadResult
			if textFile != "" {
				data, err := os.ReadFile(textFile)
				if err != nil {
					return fmt.Errorf("read text file: %w", err)
				}
				res, err = app.RecordsService.ExtractText(ctx, string(data))
				if err != nil {
					return err
				}
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open resume: %w", err)
				}
				defer f.Close()
				res, err = app.RecordsService.Upload(ctx, filepath.Base(args[0]), f)
				if err != nil {
					return err
				}
			}

			out, err := records.EncodeLine(res.Record)
			if err != nil {
				return err
			}
			var pretty map[string]any
			if err := json.Unmarshal(out, &pretty); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(pretty); err != nil {
				return err
			}

			if !res.Saved() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: record was not saved: %v\n", res.SaveErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&textFile, "text", "", "Read resume text from a plain-text file instead of a PDF")
	return cmd
}
