// Package driven defines the interfaces the host CLI calls out to.
//
// Adapters in internal/adapters/driven implement them.
package driven
