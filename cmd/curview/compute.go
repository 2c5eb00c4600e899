package main

import (
	"strings"

	"github.com/spf13/cobra"

	curv "github.com/gvallverdu/curview"
)

var computeColumns string

var computeCmd = &cobra.Command{
	Use:   "compute <file.xyz>",
	Short: "Analyze an XYZ file and write the results as CSV to stdout.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mol, err := curv.XYZRead(args[0])
		if err != nil {
			return err
		}
		data, err := curv.Analyze(mol)
		if err != nil {
			return err
		}
		var columns []string
		if computeColumns != "" {
			columns = strings.Split(computeColumns, ",")
		}
		return data.WriteCSV(cmd.OutOrStdout(), columns...)
	},
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().StringVarP(&computeColumns, "columns", "", "", "Comma-separated subset of columns to write.")
}
