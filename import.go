package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"signal-dashboard/database"
	"signal-dashboard/ingest"
	"signal-dashboard/repositories"
)

var importCmd = &cobra.Command{
	Use:   "import [csv-file]",
	Short: "Load a signal CSV export into the database",
	Long: `Import replaces the stored signals with the rows of a CSV export.
Without an argument the configured data file is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DataFile
		if len(args) == 1 {
			path = args[0]
		}

		db, err := database.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck // best-effort close

		repo := repositories.NewSignalRepository(db, cfg.ImportBatchSize)
		n, err := importFile(cmd.Context(), repo, path)
		if err != nil {
			return err
		}

		clusters, err := repo.Clusters(cmd.Context())
		if err != nil {
			return err
		}
		printImportSummary(cmd.OutOrStdout(), path, n, clusters.Len())
		return nil
	},
}

// importFile loads the CSV at path into repo and returns the row count.
func importFile(ctx context.Context, repo repositories.SignalRepository, path string) (int, error) {
	signals, err := ingest.LoadFile(path)
	if err != nil {
		return 0, err
	}
	if err := repo.ReplaceAll(ctx, signals); err != nil {
		return 0, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return len(signals), nil
}

var (
	colorGreen = color.New(color.FgGreen)
	colorBold  = color.New(color.Bold)
)

func printImportSummary(w io.Writer, path string, signals, clusters int) {
	fmt.Fprintf(w, "%s %s\n", colorGreen.Sprint("imported"), path)
	fmt.Fprintf(w, "  signals:  %s\n", colorBold.Sprint(strconv.Itoa(signals)))
	fmt.Fprintf(w, "  clusters: %s\n", colorBold.Sprint(strconv.Itoa(clusters)))
}
