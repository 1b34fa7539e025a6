package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/midiseq/constants"
	"github.com/jsphweid/midiseq/util"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Second, "poll interval")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-reports when files change",
	Long:  `Re-reports when files change`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := constants.GetMediaDir()
		if len(args) == 1 {
			dir = args[0]
		}
		watch(dir)
	},
}

// treeSignature is a cheap change detector: file count plus the newest
// mtime across the tree.
func treeSignature(dir string) string {
	paths := util.GatherAllMidiPaths(dir, 0)
	var newest time.Time
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	return fmt.Sprintf("%d-%d", len(paths), newest.UnixNano())
}

func watch(dir string) {
	fmt.Printf("Watching %v\n", dir)
	debounced := debounce.New(500 * time.Millisecond)
	last := treeSignature(dir)
	report(dir, 0)

	for {
		time.Sleep(watchInterval)
		sig := treeSignature(dir)
		if sig == last {
			continue
		}
		last = sig
		debounced(func() {
			report(dir, 0)
		})
	}
}
