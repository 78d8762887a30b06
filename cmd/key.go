package cmd

import (
	"fmt"

	"github.com/jsphweid/chordshift/transpose"
	"github.com/spf13/cobra"
)

var keySteps int

func init() {
	keyCmd.Flags().IntVarP(&keySteps, "steps", "s", 0, "report the key after moving this many semitones")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key [file]",
	Short: "Guesses the key of a chord sheet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), transpose.RenderKeyLabel(transpose.DetectKey(text), keySteps))
		return nil
	},
}
