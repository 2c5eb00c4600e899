//curview serves and analyzes local molecular curvature data: it reads
//XYZ structure files, computes per-atom curvature descriptors and
//exposes them over a local HTTP API for the structure viewer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "curview",
	Short: "Local viewer backend for molecular curvature analysis.",
	Long: `curview analyzes the local curvature of molecular structures.

It reads XYZ files, computes per-atom descriptors (pyramidalization
angle, angular defect, spherical curvature, POAV1 hybridization) and
serves them over a local HTTP API, or writes them as CSV.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to the configuration file.")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "", "text", "Log format, text or json.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "curview: %v\n", err)
		os.Exit(1)
	}
}
