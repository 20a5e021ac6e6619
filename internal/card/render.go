// Package card composes square brand cards: a logo centered on a
// rounded-corner background whose color comes from the logo itself.
package card

import (
	"image"

	colorpkg "github.com/youruser/brandcards/internal/color"
)

// Render produces one finished card from a decoded logo and a chosen
// background color.
//
// The logo is fitted first and the contrast decision is made on the fitted
// pixels, so recoloring reflects what actually ends up on the card. A logo
// that reads too close to the background is flattened to white, which keeps
// it legible on dark backgrounds without changing its silhouette.
//
// Degenerate input (an all-transparent logo) still renders: the color
// analysis falls back to its neutral defaults rather than failing.
func Render(logo image.Image, background colorpkg.RGB, spec Spec) *image.NRGBA {
	canvas := MakeBackground(spec.CanvasSize, background, spec.Radius)

	fitted := FitLogo(logo, spec.CanvasSize, spec.MaxRatio)

	avg := colorpkg.AverageColor(fitted)
	if colorpkg.NeedsRecolor(avg, background, spec.ContrastThreshold) {
		fitted = colorpkg.RecolorToWhite(fitted)
	}

	return CenterOn(canvas, fitted)
}
