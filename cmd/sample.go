package cmd

import (
	"fmt"

	"github.com/jsphweid/midiseq/sample"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample [out.mid]",
	Short: "Writes a sample midi file",
	Long:  `Writes a sample midi file`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "sample.mid"
		if len(args) == 1 {
			path = args[0]
		}
		if err := sample.WriteFile(path); err != nil {
			panic("Could not write sample because: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", path)
	},
}
