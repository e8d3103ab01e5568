// Package config provides configuration management for booking-sync.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of each section and are registered
// by reflection, so every key can be overridden by its upper-cased environment name
// (schedule.interval -> SCHEDULE_INTERVAL).
//
// # Configuration Structure
//
//   - Server: HTTP port and API key of the web view
//   - Log: level, format and optional rotating file
//   - Calcom: provider credentials, event type, fixtures and availability window
//   - Schedule: calendar bounds, slot interval and time zone
//   - Export: output directory, basename, formats and sinks
//   - Storage, Database: optional sinks
//   - Sync, Cancel: scheduled refresh and cancellation workflow
//
// The provider credentials also accept CAL_API_KEY and EVENT_TYPE_ID.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
package config
