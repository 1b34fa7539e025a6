package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midiseq",
	Short: "Decode standard MIDI files",
	Long:  `Decodes standard MIDI files into note/control sequences in quarter-note time.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
