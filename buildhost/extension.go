package buildhost

import (
	"fmt"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// ExtensionContainer holds the objects plugins expose to build scripts.
type ExtensionContainer struct {
	byName map[string]any
}

// NewExtensionContainer returns an empty container.
func NewExtensionContainer() *ExtensionContainer {
	return &ExtensionContainer{byName: make(map[string]any)}
}

// Add registers ext under name.
func (c *ExtensionContainer) Add(name string, ext any) error {
	if _, ok := c.byName[name]; ok {
		return humane.Wrap(ErrDuplicateExtension,
			fmt.Sprintf("cannot add extension %q", name),
			"Each plugin should register its extension only once per project.",
		)
	}
	c.byName[name] = ext
	return nil
}

// Get returns the extension registered under name.
func (c *ExtensionContainer) Get(name string) (any, bool) {
	ext, ok := c.byName[name]
	return ext, ok
}

// ExtensionOf returns the extension registered under name as a T.
func ExtensionOf[T any](c *ExtensionContainer, name string) (T, error) {
	var zero T
	ext, ok := c.Get(name)
	if !ok {
		return zero, humane.Wrap(ErrExtensionNotFound,
			fmt.Sprintf("extension %q not found", name),
			"Make sure the plugin providing this extension is applied.",
		)
	}
	typed, ok := ext.(T)
	if !ok {
		return zero, humane.Wrap(ErrExtensionNotFound,
			fmt.Sprintf("extension %q has type %T, not %T", name, ext, zero),
			"Another plugin registered an extension with the same name.",
		)
	}
	return typed, nil
}
