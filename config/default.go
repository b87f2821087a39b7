// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/micropad-cli/micropad/color"
	"github.com/micropad-cli/micropad/key"
	"github.com/micropad-cli/micropad/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	if alias, ok := EnvAliases[f.Key]; ok {
		return alias
	}
	return envName(f.Key)
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ThemeMode, "", "Theme mode.\nSet to \"system\" to inherit ambient terminal styling and skip palette resolution entirely")
	register(key.ThemeWatch, true, "Watch theme sources for changes and re-apply automatically.\nWhen false the theme is resolved once at startup")
	register(key.ThemeBackground, "", "Explicit background color override (hex, 0x or rgb: form)")
	register(key.ThemeForeground, "", "Explicit foreground color override (hex, 0x or rgb: form)")
	register(key.ThemeSelectionBackground, "", "Explicit selection background color override")
	register(key.ThemeSelectionForeground, "", "Explicit selection foreground color override")
	register(key.ThemeCaret, "", "Explicit caret color override")
	register(key.EditorShowStatus, true, "Show the Ln/Col/Length status bar under the editing surface")
	register(key.EditorSaveState, true, "Persist the last opened file and window geometry between sessions")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliIcons, "plain", "Icons variant.\nAvailable options are: emoji, nerd, plain, squares (nerd-font required for nerd)")
	register(key.CliVersionCheck, false, "Check if a new version is available when running the version command")

	if len(Default) != key.DefinedFieldsCount {
		panic(fmt.Sprintf("expected %d registered config fields, got %d", key.DefinedFieldsCount, len(Default)))
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
