// Package cmd implements the command-line interface for micropad.
package cmd

import (
	"os"

	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/micropad-cli/micropad/color"
	"github.com/micropad-cli/micropad/style"
	"github.com/micropad-cli/micropad/theme"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.Flags().BoolP("resolved", "r", false, "Display only the merged palette without per-source details")
	themeCmd.SetOut(os.Stdout)
}

// themeCmd inspects the palette resolution pipeline.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the discovered terminal color sources and the resolved palette",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		resolvedOnly, _ := cmd.Flags().GetBool("resolved")

		if theme.SystemMode() {
			cmd.Println(style.Faint("theme mode is set to \"system\", ambient terminal styling is in effect"))
			cmd.Println()
		}

		if !resolvedOnly {
			for _, source := range theme.Sources() {
				cmd.Println(headerStyle(source.Name))
				if source.Palette.IsEmpty() {
					cmd.Println(style.Faint("  nothing found"))
					cmd.Println()
					continue
				}
				printPalette(cmd, source.Palette)
				cmd.Println()
			}
		}

		cmd.Println(headerStyle("resolved"))
		printPalette(cmd, theme.Resolve())
	},
}

// printPalette renders each palette role with a color swatch.
func printPalette(cmd *cobra.Command, pal theme.Palette) {
	row := func(name string, value mo.Option[string]) {
		cmd.Printf("  %-22s %s\n", name, style.Swatch(value.OrEmpty()))
	}

	row("background", pal.Background)
	row("foreground", pal.Foreground)
	row("selection background", pal.SelectionBackground)
	row("selection foreground", pal.SelectionForeground)
	row("caret", pal.Caret)
}

func init() {
	themeCmd.AddCommand(themeCssCmd)
	themeCssCmd.Flags().Bool("dark", false, "Generate for a dark terminal background")
	themeCssCmd.Flags().Bool("light", false, "Generate for a light terminal background")
	themeCssCmd.MarkFlagsMutuallyExclusive("dark", "light")
	themeCssCmd.SetOut(os.Stdout)
}

// themeCssCmd prints the stylesheet generated from the resolved palette.
var themeCssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the stylesheet generated from the resolved palette",
	Run: func(cmd *cobra.Command, args []string) {
		dark := theme.Manager().Dark()
		if cmd.Flags().Changed("dark") {
			dark = true
		}
		if cmd.Flags().Changed("light") {
			dark = false
		}

		cmd.Println(theme.Stylesheet(theme.Resolve(), dark))
	},
}
