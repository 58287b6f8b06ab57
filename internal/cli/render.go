package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/MikeBiancalana/bullet/internal/outline"
	"github.com/spf13/cobra"
)

// renderCmd renders an indented outline as a bulleted list
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render an indented outline as a nested bulleted list",
	Long: `Reads an indented outline (two spaces or one tab per level) from a file
or stdin and prints it as a nested bulleted list, using the configured
theme's markers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open outline: %w", err)
			}
			defer f.Close()
			in = f
		}

		l, err := outline.Parse(in)
		if err != nil {
			return err
		}

		th, _, err := loadTheme()
		if err != nil {
			return err
		}
		if th != nil {
			l.ApplyTheme(th)
		}

		fmt.Fprintln(cmd.OutOrStdout(), l.String())
		return nil
	},
}
