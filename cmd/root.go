// Package cmd provides the root command and CLI setup for kitchensink.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/moofone/kitchensink-testing/internal/adapter"
	"github.com/moofone/kitchensink-testing/internal/controller"
	"github.com/moofone/kitchensink-testing/internal/domain"
	"github.com/moofone/kitchensink-testing/internal/metrics"
	m "github.com/moofone/kitchensink-testing/internal/model"
)

var eventLog adapter.EventLogAdapter
var runStore adapter.RunStoreAdapter
var engine adapter.MutationEngine
var envAdapter adapter.EnvironmentAdapter
var workflow domain.Workflow
var ui controller.UI

// metricsRegistry collects run metrics for the optional textfile export.
var metricsRegistry = prometheus.NewRegistry()

var projectFlag string
var runRootFlag string
var filterFlag string
var timeoutSecsFlag uint64
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	eventLog = adapter.NewLocalEventLogAdapter()
	runStore = adapter.NewLocalRunStoreAdapter()
	engine = adapter.NewCargoMutantsEngine()
	envAdapter = adapter.NewLocalEnvironmentAdapter()
	workflow = newWorkflow()

	cobra.CheckErr(metrics.Register(metricsRegistry))
}

func newWorkflow(opts ...domain.WorkflowOption) domain.Workflow {
	return domain.NewWorkflow(eventLog, runStore, engine, envAdapter, ui, opts...)
}

const rootLongDescription = `Kitchensink runs cargo-mutants one mutant at a time and records every step
in an append-only event log, so an interrupted run can be resumed exactly
where it stopped and surviving mutants can be retested after the tests
improve.

Runs live under <project>/.kitchensink-testing/mutation/runs by default.
Running "kitchensink run" again resumes the newest compatible incomplete run,
or retests the survivors of the newest completed one.`

const runLongDescription = `Run mutation testing for the project.

If a run with the same filter and timeout was interrupted it is resumed.
If the newest matching run completed with survivors, only those survivors
are retested. Otherwise a new run is started.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kitchensink",
		Short: "Resumable mutation testing for Rust projects",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with flags bound, without subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&projectFlag, projectFlagName, defaultProject, "path to the cargo project")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectKey)

	cmd.PersistentFlags().StringVar(&runRootFlag, runRootFlagName, "", "directory holding run directories (default <project>/.kitchensink-testing/mutation/runs)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(runRootFlagName), runRootKey)

	cmd.PersistentFlags().StringVarP(&filterFlag, filterFlagName, "f", "", "only test mutants whose id, label or selector contains this text")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(filterFlagName), filterKey)

	cmd.PersistentFlags().Uint64Var(&timeoutSecsFlag, timeoutSecsFlagName, 0, "per-mutant timeout in seconds passed to cargo-mutants (0 = tool default)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(timeoutSecsFlagName), timeoutSecsKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "application log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runOperation is one of the workflow operations that executes mutants.
type runOperation func(ctx context.Context, w domain.Workflow, args domain.RunArgs) (m.RunResult, error)

// executeRun runs op with the UI started in run mode. When a history DSN is
// configured the events are mirrored there; when a metrics file is configured
// the run metrics are exported to it afterwards. Neither can fail the run.
func executeRun(cmd *cobra.Command, runID string, op runOperation) error {
	ctx := commandContext(cmd)
	w := workflow

	if dsn := strings.TrimSpace(viper.GetString(historyDSNKey)); dsn != "" {
		sink, err := adapter.NewHistorySink(ctx, dsn)
		if err != nil {
			slog.Warn("Failed to open history store, continuing without it", "error", err)
		} else {
			defer closeHistory(sink)

			w = newWorkflow(domain.WithHistorySink(sink))
		}
	}

	if err := ui.Start(ctx, controller.WithRunMode()); err != nil {
		return err
	}
	defer ui.Close(ctx)

	result, err := op(ctx, w, domain.RunArgs{Config: mutationConfig(), RunID: runID})
	if err != nil {
		return err
	}

	ui.DisplayRunResult(ctx, result)
	exportMetrics()

	return nil
}

func closeHistory(sink adapter.HistorySink) {
	if err := sink.Close(); err != nil {
		slog.Warn("Failed to close history store", "error", err)
	}
}

func exportMetrics() {
	path := strings.TrimSpace(viper.GetString(metricsFileKey))
	if path == "" {
		return
	}

	if err := metrics.WriteTextfile(path, metricsRegistry); err != nil {
		slog.Warn("Failed to export metrics", "path", path, "error", err)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
