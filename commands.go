// commands.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"lottoboard/internal/config"
	"lottoboard/internal/feed"
	"lottoboard/internal/grid"
	"lottoboard/internal/logging"
	"lottoboard/internal/sheet"
	"lottoboard/internal/sortengine"
	"lottoboard/internal/tally"
)

const shutdownTimeout = 10 * time.Second

// app owns CLI wiring; Stdout and Stderr are swapped in tests.
type app struct {
	Stdout io.Writer
	Stderr io.Writer
	cfg    *config.Config
}

func newApp() *app {
	return &app{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (a *app) execute(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	var (
		configPath string
		debugMode  bool
		logFormat  string
	)

	rootCmd := &cobra.Command{
		Use:           "lottoboard",
		Short:         "Dashboard for historical lottery draws",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := logging.ParseFormat(logFormat)
			if err != nil {
				return err
			}
			if format == logging.FormatJSON {
				logging.SetupJSON(debugMode, a.Stderr)
			} else {
				logging.Setup(debugMode, a.Stderr)
			}

			var cfg *config.Config
			if configPath != "" {
				cfg, err = config.LoadFromPath(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			slog.Debug("config loaded", "listen", cfg.Listen, "feed_url", cfg.FeedURL, "locale", cfg.Locale)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/lottoboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text|json")

	rootCmd.AddCommand(a.serveCmd())
	rootCmd.AddCommand(a.tableCmd())
	rootCmd.AddCommand(a.tallyCmd())
	rootCmd.AddCommand(a.exportCmd())
	return rootCmd
}

func (a *app) serveCmd() *cobra.Command {
	var (
		listen    string
		feedURL   string
		drawsFile string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("listen") {
				cfg.Listen = listen
			}
			if cmd.Flags().Changed("feed-url") {
				cfg.FeedURL = feedURL
			}
			if cmd.Flags().Changed("draws") {
				cfg.DrawsFile = drawsFile
			}
			return a.serve(cmd.Context(), &cfg)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", config.DefaultListen, "Address to listen on")
	cmd.Flags().StringVar(&feedURL, "feed-url", config.DefaultFeedURL, "Draw feed endpoint")
	cmd.Flags().StringVar(&drawsFile, "draws", "", "Serve draws from this csv/xlsx file at /crawling3")
	return cmd
}

func (a *app) serve(ctx context.Context, cfg *config.Config) error {
	var fetcher feed.Fetcher = feed.NewClient(cfg.FeedURL, feed.WithTimeout(cfg.Timeout))
	var local []feed.Draw
	if cfg.DrawsFile != "" {
		draws, err := feed.LoadFile(cfg.DrawsFile)
		if err != nil {
			return err
		}
		local = draws
		fetcher = feed.Static(draws)
		slog.Info("serving local draws", "file", cfg.DrawsFile, "draws", len(draws))
	}
	srv := newServer(cfg, fetcher)
	srv.local = local

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", cfg.Listen)
		errCh <- httpServer.ListenAndServe()
	}()

	// The first load runs in the background; pages show a loading state
	// until it lands.
	go srv.reload(ctx)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}

func (a *app) tableCmd() *cobra.Command {
	var toggles []int
	cmd := &cobra.Command{
		Use:   "table FILE",
		Short: "Print a sheet, sorted by toggling column headers in order",
		Long: `Import the first sheet of FILE and click the given column headers in order.
Each click cycles a column through ascending, descending and unsorted;
columns sort with the priority in which they were first activated.`,
		Example: "  lottoboard table draws.xlsx --sort 2,2,0",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := importFile(args[0])
			if err != nil {
				return err
			}
			state := sortengine.New(tbl, a.cfg.Locale)
			for _, col := range toggles {
				if col < 0 || col >= tbl.Width() {
					return fmt.Errorf("column %d out of range (0..%d)", col, tbl.Width()-1)
				}
				state = sortengine.Reduce(state, sortengine.Toggle{Column: col})
			}
			return renderTable(a.Stdout, state)
		},
	}
	cmd.Flags().IntSliceVar(&toggles, "sort", nil, "Zero-based column indexes to toggle, in order")
	return cmd
}

func renderTable(w io.Writer, state sortengine.State) error {
	view := state.View
	if len(view) == 0 {
		fmt.Fprintln(w, "(empty)")
		return nil
	}
	table := tablewriter.NewWriter(w)
	header := make([]string, view.Width())
	for i, c := range view.Header() {
		header[i] = grid.ColumnName(i) + state.DirectionOf(i).Arrow() + " " + c.String()
	}
	table.Header(header)
	for _, row := range view.Body() {
		if err := table.Append(row.Strings()); err != nil {
			return err
		}
	}
	return table.Render()
}

func (a *app) tallyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally [FILE]",
		Short: "Count how often each number 1..45 was drawn",
		Long:  "Count numbers from FILE, or from the configured feed when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var freq tally.Frequency
			if len(args) == 1 {
				tbl, err := importFile(args[0])
				if err != nil {
					return err
				}
				freq = tally.FromTable(tbl)
			} else {
				client := feed.NewClient(a.cfg.FeedURL, feed.WithTimeout(a.cfg.Timeout))
				draws, err := client.Fetch(cmd.Context())
				if err != nil {
					return err
				}
				freq = tally.FromDraws(draws)
			}
			return renderTally(a.Stdout, freq)
		},
	}
	return cmd
}

func renderTally(w io.Writer, freq tally.Frequency) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ball", "count", "alpha"})
	for _, b := range tally.Balls(freq) {
		row := []string{
			strconv.Itoa(b.Number),
			strconv.Itoa(b.Count),
			strconv.FormatFloat(b.Alpha, 'f', 2, 64),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export OUT.xlsx",
		Short: "Fetch the draw feed and save it as a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := feed.NewClient(a.cfg.FeedURL, feed.WithTimeout(a.cfg.Timeout))
			draws, err := client.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			if err := sheet.ExportFile(args[0], feed.Table(draws)); err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "wrote %d draws to %s\n", len(draws), args[0])
			return nil
		},
	}
	return cmd
}

func importFile(path string) (grid.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sheet.Import(f, path)
}
