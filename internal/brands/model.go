package brands

// Brand is one usable row of the input sheet.
type Brand struct {
	Name string `json:"name"`
	Site string `json:"site"`
	// LogoURLs holds candidate logo sources in priority order: primary
	// provider, secondary provider, then the official site's favicon.
	LogoURLs []string `json:"logo_urls"`
}
