package sqlite

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/custodia-labs/sercha-sqlite/host"
	"github.com/custodia-labs/sercha-sqlite/internal/logger"
)

// PluginName is the name the plugin registers under.
const PluginName = "sqlite"

// State is the setup state of a Plugin.
type State int32

// Plugin states. Registered and Failed are terminal.
const (
	StateUnconfigured State = iota
	StateConnecting
	StateRegistered
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConnecting:
		return "connecting"
	case StateRegistered:
		return "registered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	errSetupTwice        = errors.New("plugin already set up")
	errAlreadyRegistered = errors.New("a pool is already registered with this app")
)

// Ensure Plugin implements the interface.
var _ host.Plugin = (*Plugin)(nil)

// Plugin opens the database during host setup and registers the *Pool
// in the app's shared state.
type Plugin struct {
	cfg   Config
	state atomic.Int32
}

// NewPlugin creates a plugin for cfg.
func NewPlugin(cfg Config) *Plugin {
	return &Plugin{cfg: cfg}
}

// New creates a plugin for the database file name relative to the
// application data directory, with default settings.
func New(path string) *Plugin {
	return NewPlugin(Config{Path: path})
}

// Name implements host.Plugin.
func (p *Plugin) Name() string {
	return PluginName
}

// Config returns a copy of the plugin configuration.
func (p *Plugin) Config() Config {
	return p.cfg
}

// State returns the current setup state.
func (p *Plugin) State() State {
	return State(p.state.Load())
}

// Setup implements host.Plugin.
//
// It blocks until the pool is ready or an error occurs. On failure the
// app's shared state is left untouched.
func (p *Plugin) Setup(ctx context.Context, app *host.App) error {
	if !p.state.CompareAndSwap(int32(StateUnconfigured), int32(StateConnecting)) {
		return &Error{Kind: ErrConfiguration, Op: "setup", Err: errSetupTwice}
	}

	if err := p.setup(ctx, app); err != nil {
		p.state.Store(int32(StateFailed))
		return err
	}

	p.state.Store(int32(StateRegistered))
	return nil
}

func (p *Plugin) setup(ctx context.Context, app *host.App) error {
	if _, ok := host.TryState[*Pool](app); ok {
		return &Error{Kind: ErrConfiguration, Op: "register", Err: errAlreadyRegistered}
	}

	pool, err := Connect(ctx, app.PathResolver(), p.cfg)
	if err != nil {
		return err
	}

	// another setup may have registered a pool while we were connecting
	if !host.Manage(app, pool) {
		_ = pool.Close()
		return &Error{Kind: ErrConfiguration, Op: "register", Path: pool.Path(), Err: errAlreadyRegistered}
	}

	app.OnClose(pool.Close)

	logger.Debug("sqlite: pool for %s registered", pool.Path())
	return nil
}

// FromApp returns the pool registered by the plugin.
// The boolean is false if setup has not succeeded for app.
func FromApp(app *host.App) (*Pool, bool) {
	return host.TryState[*Pool](app)
}
