package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/midiseq/midi"
	"github.com/jsphweid/midiseq/model"
	"github.com/jsphweid/midiseq/sequence"
	"github.com/jsphweid/midiseq/util"
	"github.com/spf13/cobra"
)

var dumpKeepEmpty bool
var dumpMaxNotes int

func init() {
	dumpCmd.Flags().BoolVar(&dumpKeepEmpty, "keep-empty-tracks", false,
		"retain tracks that have no notes")
	dumpCmd.Flags().IntVar(&dumpMaxNotes, "notes", 16,
		"max notes to print per track, 0 for all")
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file.mid>",
	Short: "Prints a decoded file",
	Long:  `Prints a decoded file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dump(args[0])
	},
}

func dump(path string) {
	dat, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read file because: " + err.Error())
	}
	seq, err := midi.DecodeWithOptions(dat, sequence.Options{KeepEmptyTracks: dumpKeepEmpty})
	if err != nil {
		fmt.Printf("Could not decode %v because: %v\n", path, err)
		os.Exit(1)
	}
	printSequence(seq)
}

func printSequence(seq *model.Sequence) {
	fmt.Println("Tempos:")
	for _, t := range seq.Tempos {
		fmt.Printf("  %8.3f  %.2f qpm\n", t.Time, t.QPM)
	}
	fmt.Println("Time signatures:")
	for _, ts := range seq.TimeSignatures {
		fmt.Printf("  %8.3f  %d/%d\n", ts.Time, ts.Numerator, ts.Denominator)
	}
	fmt.Println("Key signatures:")
	for _, ks := range seq.KeySignatures {
		fmt.Printf("  %8.3f  %v\n", ks.Time, ks.Name())
	}

	for _, tr := range seq.Tracks {
		drum := ""
		if tr.IsDrum {
			drum = ", drum"
		}
		fmt.Printf("Track %q (program %d, channel %d%v): %d notes\n",
			tr.Name, tr.Program, tr.Channel, drum, len(tr.Notes))
		n := len(tr.Notes)
		if dumpMaxNotes > 0 {
			n = util.Min(n, dumpMaxNotes)
		}
		for _, note := range tr.Notes[:n] {
			fmt.Printf("  %8.3f  pitch %3d vel %3d dur %.3f\n",
				note.Start, note.Pitch, note.Velocity, note.Duration)
		}
		if n < len(tr.Notes) {
			fmt.Printf("  ... %d more\n", len(tr.Notes)-n)
		}
		for _, controller := range util.SortedKeys(tr.Controls) {
			fmt.Printf("  controller %3d: %d changes\n", controller, len(tr.Controls[controller]))
		}
	}
}
