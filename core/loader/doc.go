// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and is registered on a
// Manager at startup. LoadAll mounts the routes of every enabled feature.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The guild feature serves reconcile plans and applies; the history
// feature exposes past runs and is only enabled when a database is reachable.
package loader
