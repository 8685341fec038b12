package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"resume-extractor/internal/records"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var skills []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored records, optionally filtered by skill",
		Long:  "Lists every stored record. With one or more --skill flags only records holding at least one of the skills are shown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := root.buildApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			res, err := app.RecordsService.List(ctx, skills)
			if err != nil {
				return err
			}
			if res.Warning != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", res.Warning)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d of %d records\n", len(res.Records), res.Total)
			for _, rec := range res.Records {
				printRecord(w, rec)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&skills, "skill", nil, "Skill to filter by (repeatable)")
	return cmd
}

func newSkillsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List the distinct skills across stored records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := root.buildApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			skills, warning, err := app.RecordsService.Skills(ctx)
			if err != nil {
				return err
			}
			if warning != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
			}
			for _, s := range skills {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func printRecord(w io.Writer, rec records.ResumeRecord) {
	fmt.Fprintf(w, "\n%s (%s)\n", rec.Name, rec.Timestamp)
	fmt.Fprintf(w, "  Email:  %s\n", rec.Email)
	fmt.Fprintf(w, "  Phone:  %s\n", rec.Phone)
	if rec.Skills.Found() {
		fmt.Fprintf(w, "  Skills: %s\n", strings.Join(rec.Skills, ", "))
	} else {
		fmt.Fprintf(w, "  Skills: %s\n", rec.Skills)
	}
	for _, entry := range rec.WorkExperience {
		fmt.Fprintf(w, "  %s\n", entry)
	}
}
