package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wlur/wlur"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "wlur %s\n", wlur.Version)
		if verbose {
			fmt.Fprintf(out, "  go:      %s\n", runtime.Version())
			fmt.Fprintf(out, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			if cfg, err := GetConfig(); err == nil {
				fmt.Fprintf(out, "  config:  %s\n", cfg.Path())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
