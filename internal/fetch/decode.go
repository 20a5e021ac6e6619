package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	ico "github.com/biessek/golang-ico"
	"github.com/disintegration/imaging"

	// Widen the generic decoder beyond imaging's built-in formats; favicons
	// and scraped logos arrive in whatever format the site happens to serve.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeLogo decodes raw logo bytes into an NRGBA image. Decoders are tried
// in priority order: the generic raster decoder first, the ICO decoder
// second — favicon.ico responses are often ICO containers regardless of
// what the URL or Content-Type claims.
func DecodeLogo(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		icoImg, icoErr := ico.Decode(bytes.NewReader(data))
		if icoErr != nil {
			return nil, fmt.Errorf("decoding image: %w", err)
		}
		img = icoImg
	}
	return imaging.Clone(img), nil
}
