// Package cli provides the command-line interface for harmonia.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/nat-bishop/harmonia/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "harmonia",
	Short: "Colour-harmony analysis for image palettes",
	Long: `Harmonia extracts a palette of representative colours from an image and
scores it against classical colour-harmony schemes: triadic, square,
complementary, split-complementary and monochromatic, plus absolute
contrast and saturation metrics.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the configured root command. It is called by
// main.main().
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyseCmd)
	rootCmd.AddCommand(extractCmd)
}

// newLogger builds the logger shared by the analysis pipeline. Without
// --verbose all logging is disabled; the command's own output is the
// interface.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "harmonia",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "harmonia",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
