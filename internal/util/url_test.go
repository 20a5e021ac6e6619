package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureURL(t *testing.T) {
	assert.Equal(t, "", EnsureURL(""))
	assert.Equal(t, "https://example.com", EnsureURL("example.com"))
	assert.Equal(t, "https://example.com", EnsureURL("//example.com"))
	assert.Equal(t, "http://example.com", EnsureURL("http://example.com"))
	assert.Equal(t, "https://example.com/logo", EnsureURL("https://example.com/logo"))
}

func TestFaviconURL(t *testing.T) {
	assert.Equal(t, "", FaviconURL(""))
	assert.Equal(t, "https://example.com/favicon.ico", FaviconURL("example.com"))
	assert.Equal(t, "https://example.com/favicon.ico", FaviconURL("https://example.com/about/"))
	assert.Equal(t, "http://example.com/favicon.ico", FaviconURL("http://example.com"))
}
