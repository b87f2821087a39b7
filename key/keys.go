// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 15

// Theme Engine - these keys govern palette resolution and stylesheet application.
const (
	// ThemeMode set to "system" forces ambient styling and disables the resolution pipeline.
	ThemeMode = "theme.mode"

	// ThemeWatch toggles the background watcher; false means one-shot resolution at startup.
	ThemeWatch = "theme.watch"
)

// Palette Overrides - explicit per-field colors that take precedence over discovered sources
// only where the more specific sources left a field unset.
const (
	ThemeBackground          = "theme.bg"
	ThemeForeground          = "theme.fg"
	ThemeSelectionBackground = "theme.sel_bg"
	ThemeSelectionForeground = "theme.sel_fg"
	ThemeCaret               = "theme.caret"
)

// Editor Surface - these keys configure the interactive editing view.
const (
	EditorShowStatus = "editor.show_status"
	EditorSaveState  = "editor.save_state"
)

// Diagnostics - these keys configure persistent logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Command-Line Interface - these keys define the non-TUI output behavior.
const (
	CliColored      = "cli.colored"
	CliIcons        = "cli.icons"
	CliVersionCheck = "cli.version_check"
)
