package report

import (
	"fmt"
	"sort"
)

// Registry maps output formats to renderers.
type Registry struct {
	renderers map[Format]Renderer
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[Format]Renderer),
	}
}

// DefaultRegistry returns a registry with the text and Markdown renderers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(NewTextRenderer())
	_ = r.Register(NewMarkdownRenderer())
	return r
}

// Register adds a renderer to the registry.
// A renderer for the same format is overwritten.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("cannot register nil renderer")
	}
	if renderer.Format() == "" {
		return fmt.Errorf("renderer format cannot be empty")
	}

	r.renderers[renderer.Format()] = renderer
	return nil
}

// Get retrieves the renderer for a format.
// Returns nil and false if the format is not registered.
func (r *Registry) Get(format Format) (Renderer, bool) {
	renderer, ok := r.renderers[format]
	return renderer, ok
}

// List returns all registered formats in sorted order.
func (r *Registry) List() []Format {
	formats := make([]Format, 0, len(r.renderers))
	for f := range r.renderers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// ValidFormats returns the format names of the default registry.
// Useful for configuration validation.
func ValidFormats() []string {
	formats := DefaultRegistry().List()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat converts a string to Format.
// Returns an error if the string is not a supported format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case string(FormatText):
		return FormatText, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid report format: %q (valid formats: %v)", s, ValidFormats())
	}
}
