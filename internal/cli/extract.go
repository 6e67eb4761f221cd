package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nat-bishop/harmonia/internal/colour"
)

var (
	// Extract command flags
	extractColours   int
	extractAlgorithm string
	extractFormat    string
	extractOutput    string
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image without scoring it.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 5 colours (default) from an image
  harmonia extract wallpaper.jpg

  # Extract 8 colours with median-cut quantisation
  harmonia extract --colours 8 --algorithm mediancut wallpaper.png

  # Extract colours and output as JSON
  harmonia extract --format json wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 5, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", "kmeans", "extraction algorithm (kmeans, mediancut)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	palette, err := extractPalette(cmd, args[0], extractAlgorithm, extractColours)
	if err != nil {
		return err
	}

	palette.SortByLightness()

	output, err := formatPalette(palette, extractFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Print(output)
	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette), nil
	case "rgb":
		return formatRGB(palette), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex colour codes, with swatches when
// stdout is a terminal.
func formatHex(palette *colour.Palette) string {
	showSwatches := term.IsTerminal(int(os.Stdout.Fd()))

	output := ""
	for _, c := range palette.Colours {
		if showSwatches {
			output += colour.Preview(c.RGB, 8) + "  " + c.Hex() + "\n"
		} else {
			output += c.Hex() + "\n"
		}
	}
	return output
}

// formatRGB formats the palette as RGB values.
func formatRGB(palette *colour.Palette) string {
	output := ""
	for _, c := range palette.Colours {
		output += c.RGB.String() + "\n"
	}
	return output
}
