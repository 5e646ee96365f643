package host

import (
	"errors"
	"sync"
)

// App is the handle plugins are set up against.
// It is safe for concurrent use once built.
type App struct {
	name       string
	identifier string
	paths      PathResolver
	state      *registry

	mu      sync.Mutex
	closers []func() error
	closed  bool
}

func newApp(name, identifier string, paths PathResolver) *App {
	return &App{
		name:       name,
		identifier: identifier,
		paths:      paths,
		state:      newRegistry(),
	}
}

// Name returns the application name.
func (a *App) Name() string {
	return a.name
}

// Identifier returns the application identifier, e.g. "com.example.notes".
func (a *App) Identifier() string {
	return a.identifier
}

// PathResolver returns the resolver used for the application data directory.
func (a *App) PathResolver() PathResolver {
	return a.paths
}

// AppDataDir is a shortcut for a.PathResolver().AppDataDir().
func (a *App) AppDataDir() (string, error) {
	return a.paths.AppDataDir()
}

// OnClose registers fn to be called by Close.
// Callbacks run in reverse registration order.
func (a *App) OnClose(fn func() error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closers = append(a.closers, fn)
}

// Close runs the registered callbacks and returns their joined errors.
// Calling Close more than once is a no-op.
func (a *App) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	closers := a.closers
	a.closers = nil
	a.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
