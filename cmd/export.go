package cmd

import (
	"fmt"

	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/logging"
	"github.com/jsphweid/chordshift/midi"
	"github.com/spf13/cobra"
)

var (
	exportSteps int
	exportOut   string
	exportBPM   float64
	exportBeats int
)

func init() {
	exportCmd.Flags().IntVarP(&exportSteps, "steps", "s", 0, "semitones to move before exporting")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "song.mid", "midi file to write")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", constants.DefaultBPM, "tempo")
	exportCmd.Flags().IntVar(&exportBeats, "beats", constants.BeatsPerChord, "beats each chord is held")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Exports a chord sheet's progression to MIDI",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		s, err := midi.Export(text, exportSteps, midi.Options{BPM: exportBPM, BeatsPerChord: exportBeats})
		if err != nil {
			return err
		}
		if err := midi.WriteFile(exportOut, s); err != nil {
			return err
		}
		logging.GetLogger().Debug("exported midi", "path", exportOut, "steps", exportSteps)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOut)
		return nil
	},
}
