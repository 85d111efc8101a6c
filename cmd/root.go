package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
)

// version is set at build time with -ldflags "-X .../cmd.version=..."
var version = "dev"

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		jsonOutput bool
	)

	rootCmd := &cobra.Command{
		Use:   "edawatch",
		Short: "Health and compliance checks for EDA job hosts",
		Long: `edawatch runs one-shot checks on hosts that execute automation jobs
in containers.

  jobs        report whether recent job containers ran inside a time window
  sshd-audit  compare an sshd_config against expected default values

JSON payloads go to stdout (or a report file); logs and summaries go to stderr.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbose, jsonOutput, app.Default.Stderr)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newJobsCmd(), newSSHDAuditCmd())
	return rootCmd
}

// Execute runs the CLI until completion or SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
