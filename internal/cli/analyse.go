package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nat-bishop/harmonia/internal/colour"
	"github.com/nat-bishop/harmonia/internal/harmony"
	"github.com/nat-bishop/harmonia/internal/image"
)

var (
	// Analyse command flags
	analyseColours   int
	analyseAlgorithm string
	analyseFormat    string
	analysePalette   string
)

// analyseCmd represents the analyse command.
var analyseCmd = &cobra.Command{
	Use:   "analyse [image]",
	Short: "Score a palette against colour-harmony schemes",
	Long: `Analyse extracts a colour palette from an image and scores it against the
classical colour-harmony schemes (triadic, square, complementary,
split-complementary, monochromatic) together with absolute contrast and
saturation metrics. Every score lies in [0,1]; schemes whose colour count
requirement the palette does not meet score 0.

A palette can also be supplied directly with --palette, skipping image
extraction entirely.

Examples:
  # Extract 3 colours from an image and score the palette
  harmonia analyse --colours 3 wallpaper.jpg

  # Score a hand-picked palette
  harmonia analyse --palette "#ff0000,#00b7ff"

  # Machine-readable output
  harmonia analyse --format json wallpaper.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyse,
}

func init() {
	analyseCmd.Flags().IntVarP(&analyseColours, "colours", "c", 5, "number of colours to extract (1-256)")
	analyseCmd.Flags().StringVarP(&analyseAlgorithm, "algorithm", "a", "kmeans", "extraction algorithm (kmeans, mediancut)")
	analyseCmd.Flags().StringVarP(&analyseFormat, "format", "f", "table", "output format (table, json)")
	analyseCmd.Flags().StringVarP(&analysePalette, "palette", "p", "", "comma-separated hex colours to score instead of an image")
}

// runAnalyse executes the analyse command.
func runAnalyse(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	palette, err := resolvePalette(cmd, args)
	if err != nil {
		return err
	}

	// Present darkest to lightest, matching extraction output.
	palette.SortByLightness()

	analyser := harmony.NewAnalyser(logger)
	report := analyser.Analyse(palette)

	switch analyseFormat {
	case "table":
		fmt.Print(formatReport(palette, report))
		return nil
	case "json":
		return writeReportJSON(palette, report)
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", analyseFormat)
	}
}

// resolvePalette builds the palette to score, either parsed from --palette
// or extracted from the image argument.
func resolvePalette(cmd *cobra.Command, args []string) (*colour.Palette, error) {
	if analysePalette != "" {
		return parseHexPalette(analysePalette)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("an image path or --palette is required")
	}
	return extractPalette(cmd, args[0], analyseAlgorithm, analyseColours)
}

// parseHexPalette parses a comma-separated list of hex colours.
func parseHexPalette(spec string) (*colour.Palette, error) {
	parts := strings.Split(spec, ",")
	colours := make([]colour.Colour, 0, len(parts))
	for _, part := range parts {
		c, err := colour.FromHex(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	if len(colours) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	return colour.NewPalette(colours), nil
}

// extractPalette loads an image and extracts a palette from it.
func extractPalette(cmd *cobra.Command, imagePath, algorithm string, count int) (*colour.Palette, error) {
	if err := image.ValidateImagePath(imagePath); err != nil {
		return nil, fmt.Errorf("invalid image path: %w", err)
	}

	config := colour.ExtractorConfig{
		Algorithm:   colour.Algorithm(algorithm),
		ColourCount: count,
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", imagePath)
	}

	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
	}

	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(img, count)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Successfully extracted %d colours\n", palette.Len())
	}

	return palette, nil
}

// formatReport renders the palette and its harmony report as text. Swatches
// are included only when stdout is a terminal.
func formatReport(palette *colour.Palette, report harmony.Report) string {
	showSwatches := term.IsTerminal(int(os.Stdout.Fd()))

	var output strings.Builder

	output.WriteString("Palette:\n")
	for _, c := range palette.Colours {
		if showSwatches {
			output.WriteString("  " + colour.Preview(c.RGB, 8) + "  " + c.Hex() + "\n")
		} else {
			output.WriteString("  " + c.Hex() + "\n")
		}
	}
	output.WriteString("\n")

	table := NewTable([]string{"Scheme", "Score"})
	for _, entry := range report {
		table.AddRow([]string{string(entry.Scheme), fmt.Sprintf("%.2f", entry.Score)})
	}
	output.WriteString(table.Render())

	return output.String()
}

// analysisJSON is the JSON output shape of the analyse command.
type analysisJSON struct {
	Palette colour.PaletteJSON    `json:"palette"`
	Harmony []harmony.SchemeScore `json:"harmony"`
}

// writeReportJSON prints the palette and report as indented JSON.
func writeReportJSON(palette *colour.Palette, report harmony.Report) error {
	data, err := json.MarshalIndent(analysisJSON{
		Palette: palette.JSONModel(),
		Harmony: report,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert report to JSON: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
