package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"resume-extractor/internal/bootstrap"
	"resume-extractor/internal/shared/config"
	"resume-extractor/internal/shared/storage/db"
)

type rootOptions struct {
	logPath   string
	rulesFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "resumectl",
		Short:         "Extract and query structured resume records",
		Long:          "resumectl extracts contact details, skills and work experience from PDF resumes, appends them to the record log and filters stored records by skill.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "Record log path (overrides RECORD_LOG_PATH)")
	cmd.PersistentFlags().StringVar(&opts.rulesFile, "rules", "", "YAML rules file (overrides RULES_FILE)")

	cmd.AddCommand(
		newExtractCmd(opts),
		newListCmd(opts),
		newSkillsCmd(opts),
	)
	return cmd
}

// buildApp loads configuration, applies flag overrides and wires the record
// service. Callers must Close the returned app.
func (o *rootOptions) buildApp(ctx context.Context) (*bootstrap.App, error) {
	cfg := config.Load()
	if strings.TrimSpace(o.logPath) != "" {
		cfg.RecordStore = "file"
		cfg.RecordLogPath = o.logPath
	}
	if strings.TrimSpace(o.rulesFile) != "" {
		cfg.RulesFile = o.rulesFile
	}
	return bootstrap.BuildCore(ctx, cfg, db.DefaultMigrateOptions())
}
