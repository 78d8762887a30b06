package cmd

import (
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "chordshift",
	Short: "Chord sheet transposer",
	Long: `chordshift stores songs written as lyrics with chords and moves every
chord up or down by semitones, keeping each chord's sharp or flat spelling.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitLoggerTo(cmd.ErrOrStderr(), logLevel, logFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", constants.GetLogFormat(), "json or text")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
