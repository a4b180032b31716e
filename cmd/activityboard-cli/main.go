package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataSource    string
	mongoURI      string
	mongoDatabase string
	percentBase   string
	fixedTotal    int
	title         string
	verbose       bool

	rootCmd = &cobra.Command{
		Use:   "activityboard-cli",
		Short: "Activity board - terminal dashboard and exports",
		Long: `activityboard-cli shows the activity status board in the terminal.
It reads the same counts as the web dashboard (the built-in mapping or a
MongoDB status_counts collection) and can print, export or seed them.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataSource, "data-source", envOr("ACTIVITYBOARD_DATA_SOURCE", "static"), "where counts come from: static or mongo")
	rootCmd.PersistentFlags().StringVar(&mongoURI, "mongo-uri", envOr("ACTIVITYBOARD_MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection string")
	rootCmd.PersistentFlags().StringVar(&mongoDatabase, "mongo-database", envOr("ACTIVITYBOARD_MONGO_DATABASE", "activityboard"), "MongoDB database name")
	rootCmd.PersistentFlags().StringVar(&percentBase, "percent-base", envOr("ACTIVITYBOARD_PERCENT_BASE", "fixed"), "percentage denominator: fixed or sum")
	rootCmd.PersistentFlags().IntVar(&fixedTotal, "fixed-total", 41, "denominator used with --percent-base=fixed")
	rootCmd.PersistentFlags().StringVar(&title, "title", "Panel de Actividades", "dashboard title")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log connection details to stderr")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
