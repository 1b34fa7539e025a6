package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/midiseq/constants"
	"github.com/jsphweid/midiseq/midi"
	"github.com/jsphweid/midiseq/stats"
	"github.com/jsphweid/midiseq/util"
	"github.com/spf13/cobra"
)

var reportMax int

func init() {
	reportCmd.Flags().IntVar(&reportMax, "max", 0, "max files to scan, 0 for all")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Creates a report",
	Long:  `Creates a report`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := constants.GetMediaDir()
		if len(args) == 1 {
			dir = args[0]
		}
		report(dir, reportMax)
	},
}

func report(dir string, maxNum int) {
	paths := util.GatherAllMidiPaths(dir, maxNum)

	var failed int64
	var totalBytes uint64
	var noteCounts []int
	var trackCounts []int
	var longest float64

	for i, path := range paths {
		fmt.Printf("Scanning %v of %v midi files\n", i+1, len(paths))
		info, err := os.Stat(path)
		if err == nil {
			totalBytes += uint64(info.Size())
		}
		seq, err := midi.ReadMidiFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			failed += 1
			continue
		}
		fs := stats.Collect(seq)
		noteCounts = append(noteCounts, fs.NoteCount)
		trackCounts = append(trackCounts, fs.TrackCount)
		if fs.Beats > longest {
			longest = fs.Beats
		}
	}

	fmt.Printf("files:    %v (%v failed)\n", len(paths), failed)
	fmt.Printf("size:     %v\n", humanize.Bytes(totalBytes))
	fmt.Printf("tracks:   %v\n", humanize.Comma(int64(util.Sum(trackCounts))))
	fmt.Printf("notes:    %v\n", humanize.Comma(int64(util.Sum(noteCounts))))
	fmt.Printf("longest:  %.1f quarter notes\n", longest)
}
