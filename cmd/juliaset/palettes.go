package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/julia"
)

func newPalettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List preset palettes and their stops",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range julia.PaletteNames() {
				g, _ := julia.PaletteByName(name)
				stops := make([]string, len(g))
				for i, s := range g {
					stops[i] = s.String()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, strings.Join(stops, " "))
			}
		},
	}
}
