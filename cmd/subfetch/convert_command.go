package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subfetch/internal/config"
	"subfetch/internal/subtitle"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var toFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a subtitle file to another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := subtitle.ParseFormat(toFlag)
			if err != nil {
				return err
			}
			store, err := ctx.libraryStore()
			if err != nil {
				return err
			}

			source, err := resolveLibraryFile(args[0], store.Dir())
			if err != nil {
				return err
			}

			outputPath := strings.TrimSpace(outputFlag)
			if outputPath != "" {
				expanded, err := config.ExpandPath(outputPath)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				outputPath = expanded
			}

			result, err := store.Convert(source, target, outputPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s (%d cues)\n", result.OutputPath, len(result.Cues))
			if len(result.Skipped) > 0 {
				fmt.Fprintf(out, "Skipped %d malformed cue block(s)\n", len(result.Skipped))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&toFlag, "to", "json", "Target format: vtt, srt, or json")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: source name with new extension)")
	return cmd
}

// resolveLibraryFile accepts either a path or a bare library file name.
func resolveLibraryFile(arg, libraryDir string) (string, error) {
	expanded, err := config.ExpandPath(arg)
	if err != nil {
		return "", err
	}
	if _, statErr := os.Stat(expanded); statErr == nil {
		return expanded, nil
	}
	if !filepath.IsAbs(arg) && !strings.ContainsRune(arg, os.PathSeparator) {
		return filepath.Join(libraryDir, arg), nil
	}
	return expanded, nil
}
