package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/chordshift/transpose"
	"github.com/jsphweid/chordshift/util"
	"github.com/spf13/cobra"
)

var (
	songsQuery string
	songsTitle string
)

func init() {
	songsListCmd.Flags().StringVarP(&songsQuery, "query", "q", "", "only titles containing this")
	songsAddCmd.Flags().StringVarP(&songsTitle, "title", "t", "", "song title, defaults to the file name")
	addStoreFlags(songsListCmd)
	addStoreFlags(songsAddCmd)
	songsCmd.AddCommand(songsListCmd, songsAddCmd)
	rootCmd.AddCommand(songsCmd)
}

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "Manages stored songs",
}

var songsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists songs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		songs, err := store.List(cmd.Context(), songsQuery)
		if err != nil {
			return err
		}
		if len(songs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No songs found")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, song := range songs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", song.ID, song.Title, transpose.RenderKeyLabel(transpose.DetectKey(song.Chords), 0))
		}
		return w.Flush()
	},
}

var songsAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Adds a song from a chord sheet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		var fileTitle string
		if len(args) == 1 && args[0] != "-" {
			fileTitle = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}
		title := util.FirstNonEmpty(songsTitle, fileTitle)

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		song, err := store.Create(cmd.Context(), title, text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), song.ID)
		return nil
	},
}
