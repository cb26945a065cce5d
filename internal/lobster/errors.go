package lobster

import "fmt"

// ConfigError reports a malformed catalog or a trait set that does not
// match the catalog.
type ConfigError struct {
	Category string
	Option   string
	Reason   string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Category == "":
		return fmt.Sprintf("catalog: %s", e.Reason)
	case e.Option == "":
		return fmt.Sprintf("catalog: category %q: %s", e.Category, e.Reason)
	default:
		return fmt.Sprintf("catalog: %s/%s: %s", e.Category, e.Option, e.Reason)
	}
}

// RenderError reports a selected option that has no geometry recipe.
type RenderError struct {
	Category string
	Option   string
	Reason   string
}

func (e *RenderError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("render: %s: %s", e.Category, e.Reason)
	}
	return fmt.Sprintf("render: %s/%s: %s", e.Category, e.Option, e.Reason)
}
