package palette

import "github.com/colorhymn/hymnless/internal/config"

// Resolver maps the semantic temperature/mood labels assigned by the
// classifier to concrete RGB hex colors. Token colors arrive as raw hex
// already and never pass through here.
type Resolver struct {
	colors     map[string]string
	defaultHex string
}

// NewResolver builds a resolver from the configured palette
func NewResolver(cfg *config.PaletteConfig) *Resolver {
	return &Resolver{
		colors: map[string]string{
			"cool":     cfg.Cool,
			"neutral":  cfg.Neutral,
			"elevated": cfg.Elevated,
			"uneasy":   cfg.Uneasy,
			"troubled": cfg.Troubled,
			"warm":     cfg.Warm,
			"critical": cfg.Critical,
		},
		defaultHex: cfg.Default,
	}
}

// Resolve returns the hex color for a semantic name. Unrecognized names get
// the default color; picking a color is a rendering decision, not an error.
func (r *Resolver) Resolve(name string) string {
	if hex, ok := r.colors[name]; ok {
		return hex
	}
	return r.defaultHex
}
