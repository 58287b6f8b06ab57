package cli

import (
	"fmt"

	"github.com/MikeBiancalana/bullet/list"
	"github.com/MikeBiancalana/bullet/theme"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var glyphsPresetFlag string

// markerPresets maps preset names to raw marker values, in the shape a
// theme file would supply them.
var markerPresets = map[string]any{
	"bullets": []any{list.GlyphBullet, list.GlyphWhiteBullet, list.GlyphSquare},
	"dashes":  list.GlyphDash,
	"ascii":   []any{"*", "+", list.GlyphHyphen},
}

// glyphsCmd previews marker presets on a sample list
var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Preview marker presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		preset := glyphsPresetFlag
		if preset == "" {
			// Interactive mode
			var err error
			preset, err = runPresetPicker()
			if err != nil {
				return err
			}
		}

		marker, ok := markerPresets[preset]
		if !ok {
			return fmt.Errorf("unknown preset %q", preset)
		}

		th := &theme.Theme{
			Components: map[string]theme.Component{
				list.ComponentList: {Marker: marker},
			},
		}
		l := sampleList().ApplyTheme(th)

		fmt.Fprintln(cmd.OutOrStdout(), l.String())
		return nil
	},
}

func init() {
	glyphsCmd.Flags().StringVar(&glyphsPresetFlag, "preset", "", "preset to preview (bullets, dashes, ascii)")
}

// runPresetPicker runs an interactive form to choose a preset
func runPresetPicker() (string, error) {
	var preset string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Marker preset").
				Options(
					huh.NewOption("bullets (• ◦ ▪)", "bullets"),
					huh.NewOption("dashes (─)", "dashes"),
					huh.NewOption("ascii (* + -)", "ascii"),
				).
				Value(&preset),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("form cancelled: %w", err)
	}
	return preset, nil
}
