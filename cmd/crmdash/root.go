package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crm-dashboard/internal/config"
	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/infra/logx"
	"crm-dashboard/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var flags struct {
	config  string
	page    string
	debug   bool
	latency time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "crmdash",
	Short: "Terminal dashboard for vendors, assets, campaigns, deals and leads",
	Long: `crmdash browses CRM collections in sortable tables. Press 1-9 or
click a header to sort, / to search, e on the assets page to assign a
vendor and t on the leads page to filter by status.`,
	SilenceUsage: true,
	RunE:         run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "crmdash", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "config file (default is $HOME/.crmdash.yaml)")
	rootCmd.Flags().StringVarP(&flags.page, "page", "p", "", "page to start on (vendors, assets, campaigns, deals, leads)")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "write a debug log (also enabled by DEBUG)")
	rootCmd.Flags().DurationVar(&flags.latency, "latency", 0, "simulated latency of the sample data store")
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	path := flags.config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.page != "" {
		if _, err := crm.ParseKind(flags.page); err != nil {
			return err
		}
		cfg.StartPage = flags.page
	}
	if cmd.Flags().Changed("latency") {
		cfg.MockLatency = flags.latency
	}

	// Enable debug logging when --debug or the DEBUG environment variable is set
	if flags.debug || len(os.Getenv("DEBUG")) > 0 {
		f, err := setupDebugLog(cfg.Log)
		if err != nil {
			return err
		}
		defer f.Close()
		fmt.Printf("Debug logging enabled. Run 'tail -f %s' to view logs.\n", cfg.Log.File)
	}

	logx.Infof("crmdash %s starting on %s", version, cfg.StartPage)
	store := crm.NewRetrying(crm.NewSeededMock(cfg.MockLatency), crm.DefaultRetryOptions())
	_, err = tea.NewProgram(
		ui.InitialModel(cfg, store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	logStoreMetrics(store.Metrics().Snapshot())
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

func logStoreMetrics(s crm.MetricsSnapshot) {
	logx.Info("store metrics",
		zap.Int64("calls", s.TotalCalls),
		zap.Int64("reads", s.ReadCalls),
		zap.Int64("writes", s.WriteCalls),
		zap.Int64("retries", s.TotalRetries),
		zap.Int64("failures", s.TotalFailures),
		zap.Duration("backoff", s.TotalBackoff),
	)
}

// setupDebugLog sends both the dashboard log and Bubble Tea's own log to
// the configured file.
func setupDebugLog(lc config.LogConfig) (*os.File, error) {
	f, err := tea.LogToFile(lc.File, "crmdash")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	lvl, err := logx.ParseLevel(lc.Level)
	if err != nil {
		f.Close()
		return nil, err
	}
	logx.SetOutput(f)
	logx.SetMinLevel(lvl)
	logx.SetVerbose(lc.Verbose)
	log.SetOutput(logx.StdlogWriter(logx.LevelDebug, f))
	return f, nil
}
