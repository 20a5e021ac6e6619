// Package api exposes a small preview surface over the card pipeline, so a
// single card can be rendered from a logo URL without running the batch.
package api

import (
	"bytes"
	"image"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/youruser/brandcards/internal/card"
	colorpkg "github.com/youruser/brandcards/internal/color"
	"github.com/youruser/brandcards/internal/fetch"
)

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// specFromQuery applies size/radius query overrides to the default spec.
func specFromQuery(c *gin.Context) (card.Spec, error) {
	spec := card.DefaultSpec()
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			spec.CanvasSize = v
		}
	}
	if s := c.Query("radius"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			spec.Radius = v
		}
	}
	return spec, spec.Validate()
}

// cardHandler fetches a logo from logo_url and returns the finished card as
// a PNG.
func cardHandler(resolver *fetch.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logoURL := c.Query("logo_url")
		if logoURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "logo_url is required"})
			return
		}
		spec, err := specFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logo, _, err := resolver.Resolve(c.Request.Context(), []string{logoURL})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		background := colorpkg.DominantColor(logo)
		out := card.Render(logo, background, spec)
		writePNG(c, out)
	}
}

// qrHandler returns a rounded card carrying a QR code for the given url.
func qrHandler(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	spec, err := specFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := card.QRCard(target, spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writePNG(c, out)
}

func writePNG(c *gin.Context, img *image.NRGBA) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
