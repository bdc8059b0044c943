package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cfgpkg "github.com/KaramelBytes/seatboard/internal/config"
	"github.com/KaramelBytes/seatboard/internal/parser"
	"github.com/KaramelBytes/seatboard/internal/pipeline"
	"github.com/KaramelBytes/seatboard/internal/sheets"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Sheet flags (override config if set)
	flagSheetID        string
	flagSheetTitle     string
	flagSheetRange     string
	flagHTTPTimeoutSec int
	// Local source flags
	flagFile      string
	flagFileSheet string

	// Loaded configuration
	cfg    *cfgpkg.Global
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "seatboard",
	Short: "seatboard: dining-room seating dashboard from a residents sheet",
	Long: `seatboard fetches the residents sheet, groups present residents by table and
beverage preference, and renders the seating dashboard as HTML, a terminal summary,
or a workbook.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if debug {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.seatboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagSheetID, "sheet-id", "", "spreadsheet document id (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSheetTitle, "sheet", "", "sheet name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSheetRange, "range", "", "cell range, e.g. A1:Z1000 (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP timeout in seconds for the sheet fetch (0 = none)")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "read residents from a local .csv/.tsv/.xlsx/.gviz file instead of fetching")
	rootCmd.PersistentFlags().StringVar(&flagFileSheet, "xlsx-sheet", "", "XLSX: sheet name to read (default first sheet)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{
			SheetID:    cfgpkg.DefaultSheetID,
			SheetTitle: cfgpkg.DefaultSheetTitle,
			SheetRange: cfgpkg.DefaultSheetRange,
		}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("sheet-id") && flagSheetID != "" {
		cfg.SheetID = flagSheetID
	}
	if f.Changed("sheet") && flagSheetTitle != "" {
		cfg.SheetTitle = flagSheetTitle
	}
	if f.Changed("range") && flagSheetRange != "" {
		cfg.SheetRange = flagSheetRange
	}
	if f.Changed("http-timeout") && flagHTTPTimeoutSec >= 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
}

func newFetcher() *sheets.Fetcher {
	return sheets.NewFetcher(cfg.Source(), cfg.BaseURL, cfg.HTTPTimeout(), logger)
}

// newSource picks the local file when --file is set, otherwise the remote sheet.
func newSource() pipeline.Source {
	if flagFile != "" {
		return parser.FileSource{Path: flagFile, Options: parser.Options{Sheet: flagFileSheet}}
	}
	return newFetcher()
}
