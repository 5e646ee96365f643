// Package sqlite provides a host plugin that opens a pooled connection to
// a local SQLite database file and registers it as shared application state.
//
// The database file lives in the application data directory reported by
// the host. The directory and the file are created on first use; an
// existing file is opened as-is.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO.
//
// # Usage
//
//	app, err := host.NewBuilder("notes", "com.example.notes").
//	    Plugin(sqlite.New("notes.db")).
//	    Build(ctx)
//	if err != nil {
//	    return err
//	}
//
//	pool, ok := sqlite.FromApp(app)
//
// # Errors
//
// Every failure is an *Error whose kind is one of ErrConfiguration, ErrIO
// or ErrConnection. Nothing is registered when setup fails.
//
// # Thread Safety
//
// A *Pool embeds *sql.DB and can be shared by any number of goroutines.
package sqlite
