package card

import "fmt"

const (
	// DefaultCanvasSize is the edge length of a card in pixels.
	DefaultCanvasSize = 600
	// DefaultRadius is the corner radius of the rounded background.
	DefaultRadius = 40
	// DefaultMaxRatio is the generic logo fill ratio of the canvas.
	DefaultMaxRatio = 0.6
	// RenderMaxRatio is the slightly looser fill ratio used for final cards,
	// so rendered logos come out a touch larger than the library default.
	// Kept distinct from DefaultMaxRatio on purpose.
	RenderMaxRatio = 0.62
	// DefaultContrastThreshold is the contrast ratio below which a logo is
	// recolored to white.
	DefaultContrastThreshold = 2.5
)

// Spec configures card rendering. The zero value is not usable; start from
// DefaultSpec.
type Spec struct {
	CanvasSize        int
	Radius            int
	MaxRatio          float64
	ContrastThreshold float64
}

// DefaultSpec returns the rendering configuration used for final cards.
func DefaultSpec() Spec {
	return Spec{
		CanvasSize:        DefaultCanvasSize,
		Radius:            DefaultRadius,
		MaxRatio:          RenderMaxRatio,
		ContrastThreshold: DefaultContrastThreshold,
	}
}

// Validate checks the spec invariants: the corner radius must fit twice into
// the canvas and the fill ratio must be in (0, 1].
func (s Spec) Validate() error {
	if s.CanvasSize < 1 {
		return fmt.Errorf("canvas size must be positive, got %d", s.CanvasSize)
	}
	if s.Radius < 0 || s.Radius > s.CanvasSize/2 {
		return fmt.Errorf("corner radius %d out of range [0, %d]", s.Radius, s.CanvasSize/2)
	}
	if s.MaxRatio <= 0 || s.MaxRatio > 1 {
		return fmt.Errorf("fill ratio %v out of range (0, 1]", s.MaxRatio)
	}
	if s.ContrastThreshold < 1 {
		return fmt.Errorf("contrast threshold %v below minimum possible ratio 1", s.ContrastThreshold)
	}
	return nil
}
