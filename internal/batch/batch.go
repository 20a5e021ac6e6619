// Package batch drives the whole run: resolve each brand's logo, render its
// card, write the PNG, and bundle the results into a zip archive.
package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"github.com/youruser/brandcards/internal/brands"
	"github.com/youruser/brandcards/internal/card"
	colorpkg "github.com/youruser/brandcards/internal/color"
	"github.com/youruser/brandcards/internal/fetch"
	"github.com/youruser/brandcards/internal/util"
)

// Options configures a batch run.
type Options struct {
	OutDir string
	Spec   card.Spec
}

// Result records one successfully rendered brand.
type Result struct {
	Brand     string
	Path      string
	SourceURL string
}

// Runner renders cards for a list of brands, one at a time.
type Runner struct {
	resolver *fetch.Resolver
	opts     Options
}

func NewRunner(resolver *fetch.Resolver, opts Options) *Runner {
	return &Runner{resolver: resolver, opts: opts}
}

// Run processes every brand in order. A failing brand is logged and skipped;
// it never aborts the batch. Only context cancellation and an unusable
// output directory stop the run.
func (r *Runner) Run(ctx context.Context, list []brands.Brand) ([]Result, error) {
	if err := util.EnsureDir(r.opts.OutDir); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var results []Result
	for _, b := range list {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.renderOne(ctx, b)
		if err != nil {
			log.Warn().Str("brand", b.Name).Err(err).Msg("skipping brand")
			continue
		}
		log.Info().Str("brand", b.Name).Str("path", res.Path).Str("source", res.SourceURL).Msg("card written")
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) renderOne(ctx context.Context, b brands.Brand) (Result, error) {
	logo, source, err := r.resolver.Resolve(ctx, b.LogoURLs)
	if err != nil {
		return Result{}, err
	}

	background := colorpkg.DominantColor(logo)
	img := card.Render(logo, background, r.opts.Spec)

	path := filepath.Join(r.opts.OutDir, brands.Slug(b.Name)+".png")
	if err := imaging.Save(img, path); err != nil {
		return Result{}, fmt.Errorf("saving %s: %w", path, err)
	}
	return Result{Brand: b.Name, Path: path, SourceURL: source}, nil
}
