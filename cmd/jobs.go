package cmd

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/health"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/hostinfo"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/monitor"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/report"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/runtime"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/summary"
)

type jobsOptions struct {
	configPath        string
	prefix            string
	hours             float64
	runtime           string
	host              string
	pretty            bool
	concurrency       int
	timeout           time.Duration
	minAnsibleVersion string
	summary           bool
}

func newJobsCmd() *cobra.Command {
	opts := &jobsOptions{}

	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "Report whether recent job containers executed",
		Long: `Lists all containers known to docker or podman, keeps those whose name
starts with --prefix, and classifies each by its most recent activity:

  executed_at  active within the last --hours
  last_seen    last active before the window (unhealthy)
  unknown      no usable timestamp (unhealthy)

The JSON health report is written to stdout.

Settings are layered: built-in defaults, then the YAML file given by
--config, then EDAWATCH_PREFIX / EDAWATCH_HOURS / EDAWATCH_RUNTIME, then
flags given on the command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(cmd, opts)
		},
	}

	f := jobsCmd.Flags()
	f.StringVar(&opts.configPath, "config", config.DefaultConfigPath, "YAML settings file")
	f.StringVar(&opts.prefix, "prefix", config.DefaultPrefix, "Container name prefix to match")
	f.Float64Var(&opts.hours, "hours", config.DefaultHours, "Look-back window in hours")
	f.StringVar(&opts.runtime, "runtime", config.DefaultRuntime, "Container runtime ("+strings.Join(runtime.ValidTypes(), ", ")+")")
	f.StringVar(&opts.host, "host", "", "Host name to report (default: local host name)")
	f.BoolVar(&opts.pretty, "pretty", false, "Indent the JSON output")
	f.IntVar(&opts.concurrency, "concurrency", config.DefaultConcurrency, "Containers to inspect in parallel")
	f.DurationVar(&opts.timeout, "timeout", 0, "Abort the run after this long (0 means no limit)")
	f.StringVar(&opts.minAnsibleVersion, "min-ansible-version", "", "Warn when the detected ansible is older than this")
	f.BoolVar(&opts.summary, "summary", false, "Print a job table on stderr")

	return jobsCmd
}

// resolveJobsConfig layers the config file, environment and explicitly
// set flags.
func resolveJobsConfig(cmd *cobra.Command, opts *jobsOptions, getenv func(string) string) (*config.JobsConfig, error) {
	f := cmd.Flags()

	cfg, err := config.Load(opts.configPath, f.Changed("config"))
	if err != nil {
		return nil, errors.ConfigError("failed to load configuration", err)
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, errors.ConfigError("invalid environment", err)
	}

	if f.Changed("prefix") {
		cfg.Prefix = opts.prefix
	}
	if f.Changed("hours") {
		cfg.Hours = opts.hours
	}
	if f.Changed("runtime") {
		cfg.Runtime = opts.runtime
	}
	if f.Changed("host") {
		cfg.Host = opts.host
	}
	if f.Changed("pretty") {
		cfg.Pretty = opts.pretty
	}
	if f.Changed("concurrency") {
		cfg.Concurrency = opts.concurrency
	}
	if f.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if f.Changed("min-ansible-version") {
		cfg.MinAnsibleVersion = opts.minAnsibleVersion
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	return cfg, nil
}

func runJobs(cmd *cobra.Command, opts *jobsOptions) error {
	a := app.Default

	cfg, err := resolveJobsConfig(cmd, opts, a.Getenv)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	mode, err := runtime.ParseType(cfg.Runtime)
	if err != nil {
		return errors.ValidationError(err.Error())
	}
	engine, err := runtime.New(mode, a.Exec)
	if err != nil {
		return err
	}

	mon := monitor.New(engine, cfg.Prefix, health.Window(cfg.Hours),
		monitor.WithConcurrency(cfg.Concurrency),
		monitor.WithClock(a.Now),
	)
	result, err := mon.RunOnce(ctx)
	if err != nil {
		return err
	}

	if len(result.Records) == 0 {
		logInfo("no containers matched prefix %q on %s", cfg.Prefix, result.Engine)
	}

	md := a.HostProbe().Collect(ctx, cfg.Host)
	checkAnsibleVersion(md.AnsibleVersion, cfg.MinAnsibleVersion)

	if opts.summary {
		if err := summary.Jobs(a.Stderr, result); err != nil {
			logging.Warn("failed to render summary", "error", err)
		}
	}

	if err := report.Write(a.Stdout, report.Build(result, md), cfg.Pretty); err != nil {
		return errors.ReportError("write", err)
	}
	return nil
}

// checkAnsibleVersion warns when the detected version is below minimum.
// It never changes the report.
func checkAnsibleVersion(version, minimum string) {
	if minimum == "" {
		return
	}
	if version == hostinfo.Unknown {
		logWarning("ansible version is unknown; cannot check minimum %s", minimum)
		return
	}

	ok, err := hostinfo.SatisfiesMinimum(version, minimum)
	if err != nil {
		logWarning("%v", err)
		return
	}
	if !ok {
		logWarning("ansible %s is older than the required %s", version, minimum)
	}
}
