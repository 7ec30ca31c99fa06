package main

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"subfetch/internal/language"
	"subfetch/internal/library"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderLibraryTable renders the listing layout: file name, display
// language, format, size, and modification time. Sizes are right-aligned;
// everything else reads left to right.
func renderLibraryTable(entries []library.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"NAME", "LANGUAGE", "FORMAT", "SIZE", "MODIFIED"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.Name,
			language.DisplayName(entry.Language),
			string(entry.Format),
			humanSize(entry.Size),
			entry.ModTime.Format("2006-01-02 15:04"),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
