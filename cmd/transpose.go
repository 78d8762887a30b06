package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordshift/transpose"
	"github.com/spf13/cobra"
)

var (
	transposeSteps   int
	transposeShowKey bool
)

func init() {
	transposeCmd.Flags().IntVarP(&transposeSteps, "steps", "s", 0, "semitones to move, negative moves down")
	transposeCmd.Flags().BoolVarP(&transposeShowKey, "key", "k", false, "print the key label after the text")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [file]",
	Short: "Transposes a chord sheet",
	Long:  `Transposes every chord in a chord sheet read from file or stdin.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		out := transpose.TransposeText(text, transposeSteps)
		fmt.Fprint(cmd.OutOrStdout(), out)
		if transposeShowKey {
			if out != "" && !strings.HasSuffix(out, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), transpose.RenderKeyLabel(transpose.DetectKey(text), transposeSteps))
		}
		return nil
	},
}
