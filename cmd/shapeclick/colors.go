package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapeclick/internal/core"
	"github.com/vovakirdan/shapeclick/internal/palette"
)

var colorsCmd = &cobra.Command{
	Use:     "colors [name...]",
	Aliases: []string{"colours", "palette"},
	Short:   "Show the quiz colours",
	Long: `List every colour a round can use, with its RGB value, the
two-letter abbreviation drawn on shapes and the text colour used on top.
Pass colour names to show only those.

Examples:
  shapeclick colors
  shapeclick colors red purple`,
	Args: cobra.ArbitraryArgs,
	Run:  runColors,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

func runColors(_ *cobra.Command, args []string) {
	colors, err := selectColors(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-8s %-8s %-16s %-6s %s", "SAMPLE", "NAME", "RGB", "ABBR", "TEXT")))
	fmt.Println(strings.Repeat("─", 48))
	fmt.Println(formatPalette(colors))
}

// selectColors returns the named colours in argument order, or the whole
// catalog when no names are given.
func selectColors(names []string) ([]palette.Color, error) {
	if len(names) == 0 {
		return palette.Catalog(), nil
	}
	colors := make([]palette.Color, 0, len(names))
	for _, name := range names {
		c, ok := palette.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown colour %q (run 'shapeclick colors' for the list)", name)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// formatPalette renders one line per colour with a sample swatch.
func formatPalette(colors []palette.Color) string {
	lines := make([]string, 0, len(colors))
	for _, c := range colors {
		contrast := c.Contrast()
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(c.RGB.Hex())).
			Foreground(lipgloss.Color(contrast.Hex())).
			Width(8).
			Align(lipgloss.Center).
			Render(c.Abbrev())

		text := "white"
		if contrast == core.Black {
			text = "black"
		}
		lines = append(lines, fmt.Sprintf("%s %-8s %-16s %-6s %s",
			swatch, c.Name, c.RGB.String(), c.Abbrev(), text))
	}
	return strings.Join(lines, "\n")
}
