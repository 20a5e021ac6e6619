package card

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	colorpkg "github.com/youruser/brandcards/internal/color"
)

// RoundedMask builds an opacity mask that is opaque inside a rounded
// rectangle of the given radius and transparent outside. Radius 0 yields a
// fully opaque rectangle.
func RoundedMask(width, height, radius int) *image.Alpha {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	if radius <= 0 {
		dc.DrawRectangle(0, 0, float64(width), float64(height))
	} else {
		dc.DrawRoundedRectangle(0, 0, float64(width), float64(height), float64(radius))
	}
	dc.Fill()

	rendered, _ := dc.Image().(*image.RGBA)
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mask.SetAlpha(x, y, color.Alpha{A: rendered.RGBAAt(x, y).A})
		}
	}
	return mask
}

// MakeBackground composes a flat-colored square clipped to rounded corners:
// colored inside the rounded rectangle, transparent in the corners.
func MakeBackground(size int, c colorpkg.RGB, radius int) *image.NRGBA {
	canvas := imaging.New(size, size, color.NRGBA{})
	mask := RoundedMask(size, size, radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if a := mask.AlphaAt(x, y).A; a > 0 {
				canvas.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: a})
			}
		}
	}
	return canvas
}

// FitLogo uniformly scales the logo so that its larger constrained dimension
// equals canvasSize*maxRatio. A single scale factor is applied to both axes;
// the logo is never stretched. Dimensions are floored to at least one pixel.
func FitLogo(logo image.Image, canvasSize int, maxRatio float64) *image.NRGBA {
	if maxRatio <= 0 {
		maxRatio = DefaultMaxRatio
	}
	b := logo.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return imaging.New(1, 1, color.NRGBA{})
	}
	target := int(float64(canvasSize) * maxRatio)
	scale := math.Min(float64(target)/float64(w), float64(target)/float64(h))
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return imaging.Resize(logo, nw, nh, imaging.Lanczos)
}

// CenterOn pastes the logo onto the background using the logo's own alpha as
// the paste mask. The offset uses integer division, biasing placement by at
// most one pixel toward the top-left; kept as-is for visual regression
// stability.
func CenterOn(background *image.NRGBA, logo image.Image) *image.NRGBA {
	cb := background.Bounds()
	lb := logo.Bounds()
	x := (cb.Dx() - lb.Dx()) / 2
	y := (cb.Dy() - lb.Dy()) / 2
	return imaging.Overlay(background, logo, image.Pt(x, y), 1.0)
}
