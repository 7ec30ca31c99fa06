package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subfetch/internal/subtitle"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var fileFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search cue text across library subtitle files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.TrimSpace(args[0])
			if term == "" {
				return fmt.Errorf("search term must not be empty")
			}
			store, err := ctx.libraryStore()
			if err != nil {
				return err
			}

			type matchPayload struct {
				File  string `json:"file"`
				Start string `json:"start"`
				Text  string `json:"text"`
			}
			var matches []matchPayload
			for match, err := range store.Search(term, fileFlag) {
				if err != nil {
					return err
				}
				matches = append(matches, matchPayload{
					File:  match.File,
					Start: subtitle.FormatTimestampVTT(match.Start),
					Text:  match.Text,
				})
			}

			if jsonFlag {
				if matches == nil {
					matches = []matchPayload{}
				}
				return writeJSON(cmd, matches)
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No matches for %q\n", term)
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(out, "%s  [%s]  %s\n", m.File, m.Start, m.Text)
			}
			fmt.Fprintf(out, "%d match(es)\n", len(matches))
			return nil
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Restrict the search to one library file")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}
