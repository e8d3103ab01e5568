package export

// Format names accepted in Config.Formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatICS  = "ics"
)

// Config holds configuration for the exporter.
type Config struct {
	// Dir is the directory receiving the exported files.
	Dir string `mapstructure:"dir" default:"."`
	// Basename is the file name without extension. Offline runs prefix it with "debug_".
	Basename string `mapstructure:"basename" default:"bookings"`
	// Formats lists the files to write, among csv, json, xlsx and ics.
	Formats []string `mapstructure:"formats" default:"csv,json"`
	// Upload publishes every written file to object storage.
	Upload bool `mapstructure:"upload" default:"false"`
	// Database replaces the reconciled_slots table with the dataset.
	Database bool `mapstructure:"database" default:"false"`
}

// Name returns the basename used for a run.
func (c Config) Name(debug bool) string {
	if debug {
		return "debug_" + c.Basename
	}
	return c.Basename
}
