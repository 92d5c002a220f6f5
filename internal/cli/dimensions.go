package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/creatorlab/canvas/pkg/scene"
)

// dimensionsCommand lists the canvas dimension table, config overrides
// included.
func (c *CLI) dimensionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List canvas contexts and their pixel dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := scene.Contexts()
			seen := make(map[string]bool, len(names))
			for _, n := range names {
				seen[n] = true
			}
			for n := range c.cfg.Canvases {
				if !seen[n] {
					names = append(names, n)
				}
			}
			sort.Strings(names)

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("CONTEXT", "SIZE", "LABEL")
			for _, n := range names {
				d := c.cfg.Dimensions(n)
				t.Row(n, fmt.Sprintf("%dx%d", d.Width, d.Height), d.Label)
			}
			fmt.Println(t.Render())
			return nil
		},
	}
}
