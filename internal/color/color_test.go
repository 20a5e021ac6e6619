package colorpkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDominantColorPicksMostFrequentInk(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			switch {
			case y < 6:
				img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 0, B: 0, A: 255})
			case y < 9:
				img.SetNRGBA(x, y, color.NRGBA{R: 0, G: 0, B: 200, A: 255})
			default:
				img.SetNRGBA(x, y, color.NRGBA{R: 0, G: 255, B: 0, A: 0})
			}
		}
	}
	assert.Equal(t, RGB{R: 200, G: 0, B: 0}, DominantColor(img))
}

func TestDominantColorIgnoresNearWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 30, G: 60, B: 90, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
			}
		}
	}
	assert.Equal(t, RGB{R: 30, G: 60, B: 90}, DominantColor(img))
}

func TestDominantColorFallsBackOnDegenerateInput(t *testing.T) {
	transparent := solid(8, 8, color.NRGBA{})
	assert.Equal(t, FallbackGray, DominantColor(transparent))

	nearWhite := solid(8, 8, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
	assert.Equal(t, FallbackGray, DominantColor(nearWhite))
}

func TestRelativeLuminanceExtremes(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeLuminance(RGB{}), 1e-12)
	assert.InDelta(t, 1.0, RelativeLuminance(RGB{R: 255, G: 255, B: 255}), 1e-9)
}

func TestContrastRatioSymmetric(t *testing.T) {
	pairs := [][2]RGB{
		{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}},
		{{R: 245, G: 245, B: 245}, {R: 12, G: 34, B: 56}},
		{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}},
	}
	for _, p := range pairs {
		assert.InDelta(t, ContrastRatio(p[0], p[1]), ContrastRatio(p[1], p[0]), 1e-12)
	}
}

func TestContrastRatioIdenticalColorsIsOne(t *testing.T) {
	for _, c := range []RGB{{}, {R: 255, G: 255, B: 255}, {R: 37, G: 99, B: 201}} {
		assert.InDelta(t, 1.0, ContrastRatio(c, c), 1e-12)
	}
}

func TestContrastRatioBlackWhite(t *testing.T) {
	got := ContrastRatio(RGB{}, RGB{R: 255, G: 255, B: 255})
	assert.InDelta(t, 21.0, got, 1e-6)
}

func TestNeedsRecolor(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	assert.True(t, NeedsRecolor(red, red, 2.5))
	assert.False(t, NeedsRecolor(RGB{}, FallbackGray, 2.5))
}

func TestRecolorToWhitePreservesAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	img.SetNRGBA(2, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	out := RecolorToWhite(img)

	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 128}, out.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(2, 0))
}

func TestAverageColorIgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	assert.Equal(t, RGB{R: 150, G: 150, B: 150}, AverageColor(img))
}

func TestAverageColorMean(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	assert.Equal(t, RGB{R: 127, G: 127, B: 127}, AverageColor(img))
}
