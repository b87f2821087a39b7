// Package cmd implements the command-line interface for micropad.
package cmd

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/micropad-cli/micropad/color"
	"github.com/micropad-cli/micropad/config"
	"github.com/micropad-cli/micropad/constant"
	"github.com/micropad-cli/micropad/style"
	"github.com/micropad-cli/micropad/where"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		var envVars []string
		for _, k := range config.EnvExposed {
			envVars = append(envVars, strings.ToUpper(constant.Micropad+"_"+config.EnvKeyReplacer.Replace(k)))

			// Theme keys answer to a short historical name as well.
			if alias, ok := config.EnvAliases[k]; ok {
				envVars = append(envVars, alias)
			}
		}
		envVars = append(envVars, where.EnvConfigPath, where.EnvAlacrittyConfig)
		slices.Sort(envVars)

		for _, env := range envVars {
			value := os.Getenv(env)
			present := value != ""

			if setOnly || unsetOnly {
				if !present && setOnly {
					continue
				}

				if present && unsetOnly {
					continue
				}
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
