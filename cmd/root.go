// Package cmd implements the command-line interface for micropad.
package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/micropad-cli/micropad/color"
	"github.com/micropad-cli/micropad/constant"
	"github.com/micropad-cli/micropad/editor"
	"github.com/micropad-cli/micropad/icon"
	"github.com/micropad-cli/micropad/key"
	"github.com/micropad-cli/micropad/log"
	"github.com/micropad-cli/micropad/style"
	"github.com/micropad-cli/micropad/theme"
	"github.com/micropad-cli/micropad/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.CliIcons, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().BoolP("system-theme", "s", false, "Inherit ambient terminal styling instead of resolving a palette")
	rootCmd.Flags().BoolP("no-watch", "w", false, "Resolve the theme once and skip watching sources for changes")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the micropad application.
var rootCmd = &cobra.Command{
	Use:   constant.Micropad + " [file]",
	Short: "A minimalist terminal text editor that wears your terminal's colors",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist terminal text editor that wears your terminal's colors"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("system-theme")) {
			viper.Set(key.ThemeMode, "system")
		}
		if lo.Must(cmd.Flags().GetBool("no-watch")) {
			viper.Set(key.ThemeWatch, false)
		}

		theme.ApplyBest()

		options := editor.Options{}
		if len(args) > 0 {
			options.Path = mo.Some(args[0])
		}

		if viper.GetBool(key.ThemeWatch) && !theme.SystemMode() {
			watcher := theme.NewWatcher()
			options.OnProgram = func(program *tea.Program) {
				watcher.OnApplied(func() {
					program.Send(editor.ThemeChangedMsg{})
				})
				if err := watcher.Start(); err != nil {
					log.Warnf("theme watcher not started: %v", err)
				}
			}
			defer watcher.Stop()
		}

		handleErr(editor.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
