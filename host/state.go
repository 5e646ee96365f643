package host

import (
	"fmt"
	"reflect"
	"sync"
)

// registry holds at most one value per type.
type registry struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

func newRegistry() *registry {
	return &registry{values: make(map[reflect.Type]any)}
}

// typeOf returns the static type of T, including interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Manage stores v in the app's shared state under type T.
//
// A type can be registered only once: if a value of type T is already
// present, Manage keeps it and returns false.
func Manage[T any](app *App, v T) bool {
	t := typeOf[T]()

	app.state.mu.Lock()
	defer app.state.mu.Unlock()

	if _, ok := app.state.values[t]; ok {
		return false
	}
	app.state.values[t] = v
	return true
}

// TryState returns the value of type T from the app's shared state.
// The boolean is false if nothing of that type has been registered.
func TryState[T any](app *App) (T, bool) {
	app.state.mu.RLock()
	defer app.state.mu.RUnlock()

	v, ok := app.state.values[typeOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustState is like TryState but panics if T is not registered.
func MustState[T any](app *App) T {
	v, ok := TryState[T](app)
	if !ok {
		panic(fmt.Sprintf("host: state of type %s is not managed", typeOf[T]()))
	}
	return v
}
