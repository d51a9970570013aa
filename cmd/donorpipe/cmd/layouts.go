package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openddlab/donorpipe/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the built-in platform layouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, l := range layout.Builtin().Layouts {
			fmt.Printf("%-24s %s\n", l.Name, l.Pattern)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}
