package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subfetch/internal/config"
	"subfetch/internal/fetch"
	"subfetch/internal/subtitle"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var languageFlag string
	var formatFlags []string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Download subtitles for a YouTube video",
		Long: "Download subtitles for a YouTube video in one or more formats.\n" +
			"Formats not given on the command line come from the configuration file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			formats, err := parseFormatFlags(formatFlags)
			if err != nil {
				return err
			}

			outputDir := strings.TrimSpace(outputFlag)
			if outputDir != "" {
				expanded, err := config.ExpandPath(outputDir)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
				outputDir = expanded
			}

			svc, err := fetch.NewService(cfg, logger, nil)
			if err != nil {
				return err
			}

			result, fetchErr := svc.Fetch(cmd.Context(), fetch.Request{
				URL:       args[0],
				Language:  languageFlag,
				Formats:   formats,
				OutputDir: outputDir,
			})

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, fr := range result.Formats {
				if fr.Err != nil {
					fmt.Fprintln(out, renderStatusLine(string(fr.Format), statusError, fr.Err.Error(), colorize))
					continue
				}
				fmt.Fprintln(out, renderStatusLine(string(fr.Format), statusOK, fr.Path, colorize))
			}
			if fetchErr != nil {
				return fetchErr
			}

			saved := 0
			for _, fr := range result.Formats {
				if fr.Err == nil {
					saved++
				}
			}
			fmt.Fprintf(out, "Saved %d of %d formats (language %s)\n", saved, len(result.Formats), result.Language)
			return nil
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Subtitle language code (default from config)")
	cmd.Flags().StringSliceVarP(&formatFlags, "formats", "f", nil, "Output formats: vtt, srt, json (default from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (default: library directory)")
	return cmd
}

func parseFormatFlags(values []string) ([]subtitle.Format, error) {
	formats := make([]subtitle.Format, 0, len(values))
	for _, value := range values {
		format, err := subtitle.ParseFormat(value)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}
