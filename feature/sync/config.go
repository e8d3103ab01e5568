package sync

// Config holds configuration for scheduled runs.
type Config struct {
	// Refresh is a cron expression re-running the pipeline while serving. Empty disables it.
	Refresh string `mapstructure:"refresh" default:""`
}
