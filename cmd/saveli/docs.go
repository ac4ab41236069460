package saveli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/usage.md
var usageGuide string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: MsgDocsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				// Fall back to the raw markdown
				fmt.Fprint(cmd.OutOrStdout(), usageGuide)
				return nil
			}

			rendered, err := renderer.Render(usageGuide)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), usageGuide)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
