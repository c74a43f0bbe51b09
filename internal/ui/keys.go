package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/colorhymn/hymnless/internal/config"
)

// KeyMap holds the viewer's navigation bindings, built from config
type KeyMap struct {
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Search     key.Binding
}

// NewKeyMap builds bindings from the configured key lists
func NewKeyMap(cfg *config.KeybindingConfig) KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys(cfg.Quit...), key.WithHelp("q", "quit")),
		ScrollUp:   key.NewBinding(key.WithKeys(cfg.ScrollUp...), key.WithHelp("k", "up")),
		ScrollDown: key.NewBinding(key.WithKeys(cfg.ScrollDown...), key.WithHelp("j", "down")),
		PageUp:     key.NewBinding(key.WithKeys(cfg.PageUp...), key.WithHelp("ctrl+u", "page up")),
		PageDown:   key.NewBinding(key.WithKeys(cfg.PageDown...), key.WithHelp("ctrl+d", "page down")),
		Top:        key.NewBinding(key.WithKeys(cfg.Top...), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys(cfg.Bottom...), key.WithHelp("G", "bottom")),
		Search:     key.NewBinding(key.WithKeys(cfg.Search...), key.WithHelp("/", "search")),
	}
}
