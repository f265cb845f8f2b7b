package commands

import (
	"github.com/spf13/cobra"

	"github.com/wlur/wlur"
)

var (
	kernelRadius float64
	kernelFormat string
)

// kernelReport is the structured form of a kernel.
type kernelReport struct {
	Radius    float64   `json:"radius" yaml:"radius"`
	Sigma     float64   `json:"sigma" yaml:"sigma"`
	HalfWidth int       `json:"half_width" yaml:"half_width"`
	Sum       float64   `json:"sum" yaml:"sum"`
	Weights   []float64 `json:"weights" yaml:"weights"`
}

var kernelCmd = &cobra.Command{
	Use:   "kernel",
	Short: "Print the Gaussian kernel for a radius",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := wlur.BuildKernel(kernelRadius)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), kernelReport{
			Radius:    kernelRadius,
			Sigma:     wlur.Sigma(kernelRadius),
			HalfWidth: k.HalfWidth(),
			Sum:       k.Sum(),
			Weights:   k,
		}, kernelFormat)
	},
}

func init() {
	kernelCmd.Flags().Float64VarP(&kernelRadius, "radius", "r", 1, "blur radius in pixels")
	kernelCmd.Flags().StringVar(&kernelFormat, "format", outputYAML, "output format (yaml, json)")
	rootCmd.AddCommand(kernelCmd)
}
