package card

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	colorpkg "github.com/youruser/brandcards/internal/color"
)

// QRCard renders a QR code for the given text (typically a brand's official
// site URL) in the same rounded-card format as the logo cards. The contrast
// pass is skipped: a QR code is high-contrast by construction and recoloring
// would destroy its modules.
func QRCard(text string, spec Spec) (*image.NRGBA, error) {
	size := int(float64(spec.CanvasSize) * spec.MaxRatio)
	data, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding qr png: %w", err)
	}
	canvas := MakeBackground(spec.CanvasSize, colorpkg.FallbackGray, spec.Radius)
	return CenterOn(canvas, FitLogo(img, spec.CanvasSize, spec.MaxRatio)), nil
}
