package sqlite

import (
	"errors"
	"strconv"
	"strings"
)

// Error kinds. Use errors.Is to test an error returned by this package.
var (
	// ErrConfiguration indicates the data directory is not available or
	// the configured path cannot be used as a connection target.
	ErrConfiguration = errors.New("configuration error")

	// ErrIO indicates the data directory could not be created.
	ErrIO = errors.New("i/o error")

	// ErrConnection indicates the driver could not open or create the
	// database file.
	ErrConnection = errors.New("connection error")
)

// Error describes a failed plugin setup step.
type Error struct {
	Kind error  // ErrConfiguration, ErrIO or ErrConnection
	Op   string // failed step, e.g. "open"
	Path string // attempted path, may be empty
	Err  error  // underlying error, may be nil
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("sqlite: ")
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(e.Path))
	}
	b.WriteString(": ")
	switch {
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	case e.Kind != nil:
		b.WriteString(e.Kind.Error())
	default:
		b.WriteString("unknown error")
	}
	return b.String()
}

// Unwrap returns both the kind and the underlying error.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
