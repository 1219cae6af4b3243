package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List supported cities and where their data is read from",
		Run:   runCities,
	}

	RootCmd.AddCommand(cmd)
}

func runCities(cmd *cobra.Command, args []string) {
	e := openExplorer(cmd)
	defer e.Close()

	e.Describe(os.Stdout)
}
