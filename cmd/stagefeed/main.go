package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stagefeed/internal/fetch"
	"stagefeed/internal/ingest"
	"stagefeed/internal/logging"
	"stagefeed/internal/ra"
	"stagefeed/internal/store"
)

func main() {
	root := &cobra.Command{
		Use:           "stagefeed",
		Short:         "Import storefront catalogs and venue events into the listings backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(artistCmd(), venueCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func artistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "artist <catalog-url>",
		Short: "Import one artist's full catalog of releases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(ctx context.Context, im *ingest.Importer) (ingest.Summary, error) {
				return im.ImportArtist(ctx, args[0])
			})
		},
	}
}

func venueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "venue <venue-id>",
		Short: "Import one venue's latest events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(ctx context.Context, im *ingest.Importer) (ingest.Summary, error) {
				return im.ImportVenue(ctx, args[0])
			})
		},
	}
}

func run(ctx context.Context, do func(context.Context, *ingest.Importer) (ingest.Summary, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	importer := ingest.New(
		fetch.New(cfg.HTTPTimeout),
		ra.NewClient(cfg.GraphQLEndpoint, cfg.HTTPTimeout),
		store.New(db),
		log,
	)

	summary, err := do(ctx, importer)
	if err != nil {
		return err
	}

	fmt.Printf("Done! Imported %d listing(s), skipped %d.\n", summary.Imported, summary.Skipped)
	return nil
}
