// Package key defines the canonical set of configuration identifiers.
package key

// Shade Generation - these keys select between the full scale and single expressions.
const (
	ShadesVariables = "shades.variables"
	ShadesMake      = "shades.make"
)

// Output - these keys define how generated palettes are serialized.
const (
	OutputFormat = "output.format"
	OutputName   = "output.name"
)

// History - these keys manage the persistence of recently used colors.
const (
	HistorySave        = "history.save"
	HistorySuggestions = "history.suggestions"
)

// Terminal User Interface (TUI) - these keys define the interactive preview.
const (
	TUISwatchWidth = "tui.swatch_width"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
