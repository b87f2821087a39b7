// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/micropad-cli/micropad/constant"
	"github.com/micropad-cli/micropad/filesystem"
	"github.com/micropad-cli/micropad/key"
	"github.com/micropad-cli/micropad/where"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// EnvAliases maps theme keys to the short historical variable names
// recognized alongside the canonical MICROPAD_THEME_* forms.
var EnvAliases = map[string]string{
	key.ThemeWatch:               "MICROPAD_WATCH",
	key.ThemeBackground:          "MICROPAD_BG",
	key.ThemeForeground:          "MICROPAD_FG",
	key.ThemeSelectionBackground: "MICROPAD_SEL_BG",
	key.ThemeSelectionForeground: "MICROPAD_SEL_FG",
	key.ThemeCaret:               "MICROPAD_CARET",
}

// envName derives the canonical environment variable name for a configuration key.
func envName(k string) string {
	return strings.ToUpper(constant.Micropad + "_" + EnvKeyReplacer.Replace(k))
}

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Micropad)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	// Synchronize environment variable bindings.
	viper.SetEnvPrefix(constant.Micropad)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if alias, ok := EnvAliases[env]; ok {
			viper.MustBindEnv(env, envName(env), alias)
			continue
		}
		viper.MustBindEnv(env)
	}

	// Initialize factory default values.
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
