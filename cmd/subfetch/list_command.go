package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"subfetch/internal/library"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subtitle files in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.libraryStore()
			if err != nil {
				return err
			}
			entries, err := store.List()
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, listPayload(entries))
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "Library is empty (%s)\n", store.Dir())
				return nil
			}

			fmt.Fprintln(out, renderLibraryTable(entries))
			fmt.Fprintf(out, "%d file(s) in %s\n", len(entries), store.Dir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}

type listEntryPayload struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Language string    `json:"language,omitempty"`
	Format   string    `json:"format"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

func listPayload(entries []library.Entry) []listEntryPayload {
	payload := make([]listEntryPayload, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, listEntryPayload{
			Name:     entry.Name,
			Path:     entry.Path,
			Language: entry.Language,
			Format:   string(entry.Format),
			Size:     entry.Size,
			Modified: entry.ModTime,
		})
	}
	return payload
}
