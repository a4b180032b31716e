package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dalemusser/activityboard/internal/app/bootstrap"
	"github.com/dalemusser/activityboard/internal/app/features/activity"
	statuscountstore "github.com/dalemusser/activityboard/internal/app/store/statuscounts"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/app/system/timeouts"
	"github.com/dalemusser/activityboard/internal/domain/models"
	"github.com/dalemusser/activityboard/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	printTab   string
	printWidth int
	tuiTab     string
)

func init() {
	// tui command
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive dashboard",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&tuiTab, "tab", "charts", "initial tab: charts or details")
	rootCmd.AddCommand(tuiCmd)

	// print command
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print one tab of the dashboard and exit",
		RunE:  runPrint,
	}
	printCmd.Flags().StringVar(&printTab, "tab", "charts", "tab to print: charts or details")
	printCmd.Flags().IntVar(&printWidth, "width", 80, "output width in columns")
	rootCmd.AddCommand(printCmd)

	// export command
	exportCmd := &cobra.Command{
		Use:       "export json|csv",
		Short:     "Write the counts and percentages to stdout",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"json", "csv"},
		RunE:      runExport,
	}
	rootCmd.AddCommand(exportCmd)

	// seed command
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create indexes and insert the default counts into MongoDB",
		RunE:  runSeed,
	}
	rootCmd.AddCommand(seedCmd)

	// set command
	setCmd := &cobra.Command{
		Use:   "set <status> <count>",
		Short: "Overwrite the count of one status in MongoDB",
		Long: `set writes one status count to the status_counts collection.
The status may be its display name ("Sin Realizar") or its slug (sin-realizar).`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
	rootCmd.AddCommand(setCmd)
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func appConfig() bootstrap.AppConfig {
	return bootstrap.AppConfig{
		DataSource:    dataSource,
		MongoURI:      mongoURI,
		MongoDatabase: mongoDatabase,
		PercentBase:   percentBase,
		FixedTotal:    fixedTotal,
		SeedDefaults:  true,
	}
}

// percenter applies the same checks the server's ValidateConfig does.
func percenter(cfg bootstrap.AppConfig) (tally.Percenter, error) {
	if cfg.FixedTotal <= 0 {
		return tally.Percenter{}, fmt.Errorf("--fixed-total must be positive, got %d", cfg.FixedTotal)
	}
	return cfg.Percenter()
}

// loadCounts reads the counts from the selected source.
func loadCounts(ctx context.Context, logger *zap.Logger) (tally.Counts, tally.Percenter, error) {
	cfg := appConfig()
	p, err := percenter(cfg)
	if err != nil {
		return tally.Counts{}, tally.Percenter{}, err
	}

	switch cfg.DataSource {
	case bootstrap.DataSourceStatic:
		counts, err := statuscountstore.NewStatic().List(ctx)
		return counts, p, err
	case bootstrap.DataSourceMongo:
		deps, err := bootstrap.ConnectDB(ctx, nil, cfg, logger)
		if err != nil {
			return tally.Counts{}, tally.Percenter{}, err
		}
		defer func() { _ = deps.MongoClient.Disconnect(context.Background()) }()

		lctx, cancel := timeouts.WithTimeout(ctx, timeouts.Short(), logger, "list status counts")
		defer cancel()
		counts, err := statuscountstore.New(deps.MongoDatabase).List(lctx)
		return counts, p, err
	default:
		return tally.Counts{}, tally.Percenter{}, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	counts, p, err := loadCounts(cmd.Context(), newLogger())
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.ModelConfig{
		Title:      title,
		Counts:     counts,
		Percenter:  p,
		InitialTab: tui.ParseTab(tuiTab),
	})

	prog := tea.NewProgram(model, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}

func runPrint(cmd *cobra.Command, args []string) error {
	counts, p, err := loadCounts(cmd.Context(), newLogger())
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, tui.Render(title, counts, p, tui.ParseTab(printTab), printWidth))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	counts, p, err := loadCounts(cmd.Context(), newLogger())
	if err != nil {
		return err
	}
	if args[0] == "csv" {
		return activity.WriteCSV(os.Stdout, counts, p)
	}
	return activity.WriteJSON(os.Stdout, counts, p)
}

func runSeed(cmd *cobra.Command, args []string) error {
	if dataSource != bootstrap.DataSourceMongo {
		return fmt.Errorf("seed needs --data-source=mongo")
	}
	logger := newLogger()
	cfg := appConfig()
	ctx := cmd.Context()

	deps, err := bootstrap.ConnectDB(ctx, nil, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = deps.MongoClient.Disconnect(context.Background()) }()

	if err := bootstrap.EnsureSchema(ctx, nil, cfg, deps, logger); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "status_counts ready in %s\n", cfg.MongoDatabase)
	return nil
}

// parseSetArgs turns "<status> <count>" into a status and a non-negative count.
func parseSetArgs(args []string) (models.Status, int, error) {
	st, err := models.ParseStatus(args[0])
	if err != nil {
		return "", 0, err
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return "", 0, fmt.Errorf("count %q is not a whole number", args[1])
	}
	if count < 0 {
		return "", 0, fmt.Errorf("%w: %s=%d", tally.ErrNegativeCount, st, count)
	}
	return st, count, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	st, count, err := parseSetArgs(args)
	if err != nil {
		return err
	}
	if dataSource != bootstrap.DataSourceMongo {
		return fmt.Errorf("set needs --data-source=mongo")
	}
	logger := newLogger()
	cfg := appConfig()
	ctx := cmd.Context()

	deps, err := bootstrap.ConnectDB(ctx, nil, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = deps.MongoClient.Disconnect(context.Background()) }()

	sctx, cancel := timeouts.WithTimeout(ctx, timeouts.Short(), logger, "set status count")
	defer cancel()
	if err := statuscountstore.New(deps.MongoDatabase).Set(sctx, st, count); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s = %d\n", st, count)
	return nil
}
