// Package loader registers the HTTP features of the serve command.
//
// A feature is anything that owns routes: the schedule view and the integrity report today.
// Each one implements Feature and decides for itself whether it is enabled, usually from the
// configuration it was built with.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.LoadAll walks the features in registration order, skips and logs the disabled ones
// and stops at the first Load error. It returns the names that were loaded.
package loader
