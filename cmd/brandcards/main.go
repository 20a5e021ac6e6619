// Command brandcards renders square logo cards for every brand in a
// spreadsheet and bundles the results into a zip archive.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/youruser/brandcards/internal/batch"
	"github.com/youruser/brandcards/internal/brands"
	"github.com/youruser/brandcards/internal/card"
	"github.com/youruser/brandcards/internal/fetch"
)

func main() {
	var (
		sheetPath = flag.String("sheet", "", "path to the brand sheet (.xlsx or .csv), required")
		outDir    = flag.String("outdir", "output", "output directory for PNGs")
		zipName   = flag.String("zip", "brand_logo_cards.zip", "zip archive name")
		radius    = flag.Int("radius", card.DefaultRadius, "corner radius in px")
		timeout   = flag.Duration("timeout", fetch.DefaultTimeout, "per-download timeout")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	_ = godotenv.Load()

	if *sheetPath == "" {
		fmt.Fprintln(os.Stderr, "-sheet is required")
		flag.Usage()
		os.Exit(2)
	}

	spec := card.DefaultSpec()
	spec.Radius = *radius
	if err := spec.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid card configuration")
	}

	list, err := brands.Load(*sheetPath)
	if err != nil {
		var missing *brands.MissingColumnsError
		if errors.As(err, &missing) {
			log.Fatal().Strs("columns", missing.Columns).Msg("sheet is missing required columns")
		}
		log.Fatal().Err(err).Msg("loading brand sheet")
	}
	log.Info().Int("brands", len(list)).Str("sheet", *sheetPath).Msg("sheet loaded")

	resolver := fetch.NewResolver().WithTimeout(*timeout)
	if ua := os.Getenv("BRANDCARDS_USER_AGENT"); ua != "" {
		resolver = resolver.WithUserAgent(ua)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := batch.NewRunner(resolver, batch.Options{OutDir: *outDir, Spec: spec})
	start := time.Now()
	results, err := runner.Run(ctx, list)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("batch failed")
	}

	if err := batch.WriteArchive(*zipName, results); err != nil {
		log.Fatal().Err(err).Msg("writing archive")
	}
	log.Info().
		Int("cards", len(results)).
		Int("skipped", len(list)-len(results)).
		Str("zip", *zipName).
		Dur("elapsed", time.Since(start)).
		Msg("done")
}
