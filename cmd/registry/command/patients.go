package command

import (
	"github.com/spf13/cobra"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Manage registered patients",
	Long:  "The patients command is used to inspect and clean up registered patients",
}

func init() {
	rootCmd.AddCommand(patientsCmd)
}
