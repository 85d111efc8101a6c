package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/compliance"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/summary"
)

type sshdAuditOptions struct {
	legacy    bool
	outputDir string
	summary   bool
}

func newSSHDAuditCmd() *cobra.Command {
	opts := &sshdAuditOptions{}

	auditCmd := &cobra.Command{
		Use:   "sshd-audit <sshd_config> <defaults>",
		Short: "Check an sshd_config against expected values",
		Long: `Compares each directive listed in <defaults> with its value in
<sshd_config> and writes json_log.json:

  {"message": {"status": "compliant" | "non-compliant", "<Directive>": "<value>", ...}}

<defaults> is a JSON object of directive names to expected values. Files
ending in .yaml, .yml or .toml are read in those formats.

As with sshd, the first occurrence of a directive is the one checked and
settings inside Match blocks are ignored.

--legacy reproduces the historical checker exactly, including its
inverted status and substring matching, for consumers that depend on it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHDAudit(opts, args[0], args[1])
		},
	}

	auditCmd.Flags().BoolVar(&opts.legacy, "legacy", false, "Reproduce the historical checker's output exactly")
	auditCmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory for json_log.json (default: working directory)")
	auditCmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a directive table on stderr")

	return auditCmd
}

func runSSHDAudit(opts *sshdAuditOptions, configPath, defaultsPath string) error {
	a := app.Default

	checker := compliance.NewChecker(a.FS, compliance.Options{
		Legacy:    opts.legacy,
		OutputDir: opts.outputDir,
	})

	result, err := checker.Run(configPath, defaultsPath)
	if err != nil {
		return err
	}

	if opts.summary {
		if err := summary.Compliance(a.Stderr, result); err != nil {
			logging.Warn("failed to render summary", "error", err)
		}
	}

	path, _ := checker.ReportPath()
	if result.Status == compliance.StatusCompliant {
		logSuccess("%s: %s (report: %s)", configPath, result.Status, path)
	} else {
		logWarning("%s: %s (report: %s)", configPath, result.Status, path)
	}
	return nil
}
