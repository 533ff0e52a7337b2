// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fisapacient/fisa-mcp/internal/config"
	"github.com/fisapacient/fisa-mcp/internal/extraction"
	"github.com/fisapacient/fisa-mcp/internal/logging"
	"github.com/fisapacient/fisa-mcp/internal/report"
	"github.com/fisapacient/fisa-mcp/internal/transcript"
	"github.com/fisapacient/fisa-mcp/internal/transcript/loaders"
)

type extractOptions struct {
	Format      string
	InputFormat string
	Out         string
	Save        bool
	Validate    bool
	Summary     bool
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract a patient record from a transcript file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			opts := extractOptions{Format: cfg.Output.Format, Validate: cfg.Output.Validate}
			if cmd.Flags().Changed("format") {
				opts.Format, _ = cmd.Flags().GetString("format")
			}
			if cmd.Flags().Changed("validate") {
				opts.Validate, _ = cmd.Flags().GetBool("validate")
			}
			opts.InputFormat, _ = cmd.Flags().GetString("input-format")
			opts.Out, _ = cmd.Flags().GetString("out")
			opts.Save, _ = cmd.Flags().GetBool("save")
			opts.Summary, _ = cmd.Flags().GetBool("summary")
			if opts.Save && opts.Out == "" {
				opts.Out = filepath.Join(cfg.Output.Dir, timestampedName(time.Now(), opts.Format))
			}

			source := transcript.Source{Format: opts.InputFormat, ID: "stdin"}
			if len(args) == 1 {
				source.ID = args[0]
				source.Content, err = os.ReadFile(args[0])
			} else {
				source.Content, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read transcript: %w", err)
			}

			return runExtract(cmd.Context(), logger, source, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().String("format", "json", "Output format: json or yaml")
	cmd.Flags().String("input-format", "", "Input format hint: text, asr, json or yaml (auto-detected if omitted)")
	cmd.Flags().StringP("out", "o", "", "Write the document to this file instead of stdout")
	cmd.Flags().Bool("save", false, "Write the document to a timestamped file in the configured output directory")
	cmd.Flags().Bool("validate", false, "Check the document against the report schema before writing it")
	cmd.Flags().Bool("summary", false, "Print a per-class summary to stderr")
	return cmd
}

// runExtract loads the transcript, runs the pipeline and writes the document
// either to opts.Out or to stdout.
func runExtract(ctx context.Context, logger zerolog.Logger, source transcript.Source, opts extractOptions, stdout, stderr io.Writer) error {
	reader := transcript.NewReader(loaders.Default()...)
	logger.Debug().Strs("loaders", reader.RegisteredLoaders()).Str("format", source.Format).Msg("reading transcript")
	read, err := reader.ReadWithMeta(ctx, source)
	if err != nil {
		return err
	}

	result := extraction.NewPipeline().RunWithMeta(read.Transcript.Text)
	for _, c := range result.Unresolved {
		logger.Debug().Str("structure", c.Structure).Str("value", c.Value).Msg("dropped measurement with unresolved value")
	}
	logger.Info().
		Str("source", read.Transcript.SourceID).
		Str("loader", read.LoaderUsed).
		Int("measurements", result.Counts.Measurements).
		Int("medications", result.Counts.Medications).
		Int("symptoms", result.Counts.Symptoms).
		Int("diagnoses", result.Counts.Diagnoses).
		Int("unresolved", len(result.Unresolved)).
		Msg("transcript processed")

	doc := report.Build(result.Record)
	if opts.Validate {
		encoded, err := report.Marshal(doc)
		if err != nil {
			return err
		}
		if err := report.Validate(encoded); err != nil {
			return err
		}
	}

	out, err := report.Render(doc, opts.Format)
	if err != nil {
		return err
	}

	if opts.Summary {
		writeSummary(stderr, result.Record)
	}

	if opts.Out == "" {
		_, err = fmt.Fprintf(stdout, "%s\n", out)
		return err
	}
	if err := os.WriteFile(opts.Out, out, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	logger.Info().Str("path", opts.Out).Msg("document saved")
	return nil
}

func timestampedName(now time.Time, format string) string {
	ext := "json"
	if format == report.FormatYAML {
		ext = "yaml"
	}
	return fmt.Sprintf("fisa_pacient_%s.%s", now.Format("20060102_150405"), ext)
}
