// Package fetch resolves a brand's candidate logo URLs into one decoded
// image: candidates are tried strictly in priority order and the first one
// that downloads and decodes wins.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultTimeout bounds a single candidate download.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxSize caps a response body (10MB); anything larger is not a
	// logo worth keeping.
	DefaultMaxSize = 10 * 1024 * 1024

	defaultUserAgent = "Mozilla/5.0 (LogoFetcher/1.0)"
)

// Resolver downloads and decodes logo candidates. A single best-effort
// attempt is made per candidate; there is no retry.
type Resolver struct {
	client  *resty.Client
	maxSize int64
}

// NewResolver returns a Resolver with default settings.
func NewResolver() *Resolver {
	client := resty.New().
		SetTimeout(DefaultTimeout).
		SetHeader("User-Agent", defaultUserAgent)
	return &Resolver{client: client, maxSize: DefaultMaxSize}
}

// WithTimeout sets the per-download timeout.
func (r *Resolver) WithTimeout(timeout time.Duration) *Resolver {
	r.client.SetTimeout(timeout)
	return r
}

// WithUserAgent overrides the User-Agent header sent with each request.
func (r *Resolver) WithUserAgent(ua string) *Resolver {
	r.client.SetHeader("User-Agent", ua)
	return r
}

// Resolve walks the candidate URLs in order and returns the first logo that
// downloads and decodes, together with the URL that produced it. Network and
// decode failures are recorded per candidate and never propagate
// individually; only exhausting every candidate is an error.
func (r *Resolver) Resolve(ctx context.Context, urls []string) (*image.NRGBA, string, error) {
	if len(urls) == 0 {
		return nil, "", errors.New("no candidate URLs")
	}

	var attempts []string
	for _, u := range urls {
		data, err := r.fetch(ctx, u)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", u, err))
			continue
		}
		img, err := DecodeLogo(data)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", u, err))
			continue
		}
		return img, u, nil
	}
	return nil, "", fmt.Errorf("all candidates failed: %s", strings.Join(attempts, "; "))
}

func (r *Resolver) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := r.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("status %d", resp.StatusCode())
	}
	body := resp.Body()
	if len(body) == 0 {
		return nil, errors.New("empty response body")
	}
	if int64(len(body)) > r.maxSize {
		return nil, fmt.Errorf("response too large: %d bytes exceeds %d", len(body), r.maxSize)
	}
	return body, nil
}
