// Package colorpkg analyzes logo colors: it extracts a representative
// background color from a logo and decides whether a logo needs recoloring
// to stay visible against that background.
package colorpkg

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// RGB is an opaque color triple, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

const (
	// thumbSize bounds the dominant-color scan; the logo is shrunk to fit
	// this box before counting pixels.
	thumbSize = 64
	// alphaMin is the minimum alpha for a pixel to count as logo ink (~4%).
	alphaMin = 10
	// nearWhite rejects background/whitespace pixels: a pixel with all three
	// channels above this value is not considered part of the logo.
	nearWhite = 240
)

// FallbackGray is returned when an image has no usable pixels at all
// (fully transparent or fully near-white).
var FallbackGray = RGB{R: 245, G: 245, B: 245}

// DominantColor returns the most frequent exact pixel color of the logo,
// ignoring transparent and near-white pixels. A mode over exact triples is
// used rather than a mean so flat brand fills win over anti-aliased edges.
func DominantColor(img image.Image) RGB {
	small := imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos)

	hist := make(map[RGB]int)
	for i := 0; i+3 < len(small.Pix); i += 4 {
		r, g, b, a := small.Pix[i], small.Pix[i+1], small.Pix[i+2], small.Pix[i+3]
		if a < alphaMin {
			continue
		}
		if r > nearWhite && g > nearWhite && b > nearWhite {
			continue
		}
		hist[RGB{r, g, b}]++
	}
	if len(hist) == 0 {
		return FallbackGray
	}

	var best RGB
	bestCount := -1
	for c, n := range hist {
		if n > bestCount || (n == bestCount && less(c, best)) {
			best, bestCount = c, n
		}
	}
	return best
}

func less(a, b RGB) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}

// AverageColor returns the arithmetic mean of the R, G and B channels over
// every pixel, alpha ignored. Used to judge whether a rendered logo reads as
// light or dark, as opposed to DominantColor which picks a background.
func AverageColor(img image.Image) RGB {
	nrgba := imaging.Clone(img)
	n := nrgba.Bounds().Dx() * nrgba.Bounds().Dy()
	if n == 0 {
		return FallbackGray
	}
	var sumR, sumG, sumB int
	for i := 0; i+3 < len(nrgba.Pix); i += 4 {
		sumR += int(nrgba.Pix[i])
		sumG += int(nrgba.Pix[i+1])
		sumB += int(nrgba.Pix[i+2])
	}
	return RGB{uint8(sumR / n), uint8(sumG / n), uint8(sumB / n)}
}

// RelativeLuminance computes the WCAG relative luminance of a color.
// The sRGB linearization (breakpoint 0.03928) and the channel weights must
// match the standard exactly so contrast values are interoperable with
// accessibility tooling.
func RelativeLuminance(c RGB) float64 {
	channel := func(v uint8) float64 {
		f := float64(v) / 255.0
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*channel(c.R) + 0.7152*channel(c.G) + 0.0722*channel(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// (Lmax+0.05)/(Lmin+0.05). Symmetric in its arguments.
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if lb > la {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// NeedsRecolor reports whether a logo with the given average color would be
// hard to see against the background. The threshold is deliberately below
// the 4.5:1 text guideline: logos are graphical, and over-triggering would
// wash out color logos.
func NeedsRecolor(logoAvg, background RGB, threshold float64) bool {
	return ContrastRatio(logoAvg, background) < threshold
}

// RecolorToWhite replaces the RGB of every visible pixel with pure white,
// preserving the alpha channel exactly. Fully transparent pixels pass
// through unchanged. The logo silhouette is untouched.
func RecolorToWhite(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		if out.Pix[i+3] == 0 {
			continue
		}
		out.Pix[i] = 255
		out.Pix[i+1] = 255
		out.Pix[i+2] = 255
	}
	return out
}
