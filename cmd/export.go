package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/midiseq/constants"
	"github.com/jsphweid/midiseq/file"
	"github.com/jsphweid/midiseq/midi"
	"github.com/jsphweid/midiseq/util"
	"github.com/spf13/cobra"
)

var exportMax int

func init() {
	exportCmd.Flags().IntVar(&exportMax, "max", 0, "max files to export, 0 for all")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Exports decoded files as JSON",
	Long:  `Exports decoded files as JSON`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := constants.GetMediaDir()
		if len(args) == 1 {
			dir = args[0]
		}
		export(dir, exportMax)
	},
}

func exportOne(path string) (string, error) {
	seq, err := midi.ReadMidiFile(path)
	if err != nil {
		return "", err
	}
	dat, err := json.Marshal(seq)
	if err != nil {
		return "", err
	}
	filename := uuid.New().String() + ".json"
	out := filepath.Join(constants.GetOutDir(), filename)
	if err := os.WriteFile(out, dat, 0666); err != nil {
		panic("Write failed for export file: " + err.Error())
	}
	return filename, nil
}

func export(dir string, maxNum int) {
	util.RecreateOutputDir()
	paths := util.GatherAllMidiPaths(dir, maxNum)
	fileNumMap := file.CreateFileNumMap(paths)

	exports := make(map[uint32]string)
	for i, num := range util.SortedKeys(fileNumMap) {
		fmt.Printf("Exporting %v of %v midi files\n", i+1, len(fileNumMap))
		filename, err := exportOne(fileNumMap[num])
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", fileNumMap[num], err)
			continue
		}
		exports[num] = filename
	}

	util.CreateBinary(filepath.Join(constants.GetOutDir(), "allFiles.dat"), fileNumMap)
	util.CreateBinary(filepath.Join(constants.GetOutDir(), "exports.dat"), exports)
}
