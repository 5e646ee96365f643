package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/sercha-sqlite/internal/logger"
)

// Plugin is a unit of application setup.
type Plugin interface {
	// Name identifies the plugin. It must be unique within an App.
	Name() string

	// Setup is called once while the App is being built.
	// It blocks startup until it returns; a non-nil error aborts the build.
	Setup(ctx context.Context, app *App) error
}

// Builder assembles an App and runs plugin setup.
type Builder struct {
	name       string
	identifier string
	paths      PathResolver
	plugins    []Plugin
}

// NewBuilder creates a builder for the named application.
// The identifier selects the data directory unless WithPathResolver is used.
func NewBuilder(name, identifier string) *Builder {
	return &Builder{
		name:       name,
		identifier: identifier,
	}
}

// WithPathResolver overrides where the application data directory is resolved.
func (b *Builder) WithPathResolver(r PathResolver) *Builder {
	b.paths = r
	return b
}

// Plugin adds p to the setup sequence.
func (b *Builder) Plugin(p Plugin) *Builder {
	b.plugins = append(b.plugins, p)
	return b
}

// Build creates the App and sets up every plugin in registration order.
//
// The first failing plugin aborts the build: callbacks registered with
// App.OnClose so far are run and the setup error is returned.
func (b *Builder) Build(ctx context.Context) (*App, error) {
	seen := make(map[string]bool, len(b.plugins))
	for _, p := range b.plugins {
		if p == nil {
			return nil, errors.New("nil plugin")
		}
		name := p.Name()
		if seen[name] {
			return nil, fmt.Errorf("plugin %s: registered more than once", name)
		}
		seen[name] = true
	}

	paths := b.paths
	if paths == nil {
		paths = DataDirResolver{Identifier: b.identifier}
	}

	app := newApp(b.name, b.identifier, paths)

	for _, p := range b.plugins {
		logger.Debug("host: setting up plugin %s", p.Name())

		if err := p.Setup(ctx, app); err != nil {
			if cerr := app.Close(); cerr != nil {
				logger.Warn("host: closing after failed setup: %v", cerr)
			}
			return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
	}

	return app, nil
}
