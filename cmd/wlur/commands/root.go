package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wlur/wlur"
	"github.com/wlur/wlur/cmd/wlur/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Global configuration, loaded on first use.
	globalConfig  *config.Config
	configLoadErr error
)

var rootCmd = &cobra.Command{
	Use:   "wlur",
	Short: "Gaussian blur for image files",
	Long: `wlur - apply a separable Gaussian blur to PNG, JPEG, BMP, TIFF and WebP images.

Defaults can be stored in a YAML file in the OS config directory:
  macOS:   ~/Library/Application Support/wlur/config.yaml
  Linux:   ~/.config/wlur/config.yaml
  Windows: %AppData%/wlur/config.yaml

Examples:
  # Blur with radius 8, writing blurred_image.png
  wlur blur photo.jpg -r 8

  # Write a JPEG next to the input
  wlur blur photo.png -r 3 -o photo-soft.jpg --quality 90

  # Inspect the kernel for a radius
  wlur kernel -r 2.5`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			wlur.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		} else {
			wlur.SetLogger(nil)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $WLUR_CONFIG_DIR/config.yaml or the OS config dir)")
}

// GetConfig returns the configuration, loading it on first call.
func GetConfig() (*config.Config, error) {
	if globalConfig == nil && configLoadErr == nil {
		globalConfig, configLoadErr = config.Load(configPath)
	}
	if configLoadErr != nil {
		return nil, configLoadErr
	}
	return globalConfig, nil
}
