// Package host provides the small application surface that plugins are
// set up against.
//
// An App is built once at startup by a Builder. Each registered Plugin
// gets a single synchronous Setup call, in registration order, and may
// store values in the App's shared state. Any later code holding the
// same *App retrieves those values by type:
//
//	app, err := host.NewBuilder("notes", "com.example.notes").
//	    Plugin(sqlite.New("notes.db")).
//	    Build(ctx)
//	if err != nil {
//	    return err
//	}
//	defer app.Close()
//
//	pool, ok := host.TryState[*sqlite.Pool](app)
//
// # Data Location
//
// By default the application data directory is the platform configuration
// directory joined with the application identifier, e.g.
// ~/.config/com.example.notes on Linux.
package host
