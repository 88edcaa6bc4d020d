package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cleave/internal/deps"
	"cleave/internal/logging"
	"cleave/internal/media/ffmpeg"
	"cleave/internal/prompts"
	"cleave/internal/runlog"
	"cleave/internal/services/gemini"
	"cleave/internal/splitter"
	"cleave/internal/textutil"
)

func newSplitCommand(cmdCtx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "split <video>",
		Short: "Split a video into per-event clips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			if err := requireFFmpeg(cfg.FFmpeg.Binary); err != nil {
				return err
			}

			inputPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}
			if !gemini.SupportedVideo(inputPath) {
				logger.Warn("input extension is not in the model's supported list; the upload may be rejected",
					logging.String("input", inputPath))
			}

			outputDir := cfg.Paths.OutputDir
			if strings.TrimSpace(outputFlag) != "" {
				outputDir, err = filepath.Abs(outputFlag)
				if err != nil {
					return fmt.Errorf("resolve output dir: %w", err)
				}
			}

			prompt, err := prompts.Segmentation(cfg.Prompts.SegmentationPath)
			if err != nil {
				return fmt.Errorf("load segmentation prompt: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			analyzer, err := gemini.NewClient(ctx, gemini.Config{
				APIKey:        cfg.Gemini.APIKey,
				Model:         cfg.Gemini.Model,
				Prompt:        prompt,
				UploadTimeout: time.Duration(cfg.Gemini.UploadTimeoutSeconds) * time.Second,
				PollInterval:  time.Duration(cfg.Gemini.PollIntervalSeconds) * time.Second,
			}, logger)
			if err != nil {
				return fmt.Errorf("create analyzer: %w", err)
			}
			defer analyzer.Close()

			cutter := ffmpeg.NewCutter(cfg.FFmpeg.Binary,
				time.Duration(cfg.FFmpeg.CutTimeoutSeconds)*time.Second)

			pipeline, err := splitter.New(splitter.Options{
				Analyzer:  analyzer,
				Cutter:    cutter,
				Extension: cfg.Clips.Extension,
				Parallel:  cfg.Clips.Parallel,
				Logger:    logger,
			})
			if err != nil {
				return err
			}

			result, err := pipeline.Run(ctx, inputPath, outputDir)
			if err != nil {
				return err
			}

			if cfg.History.Enabled {
				recordRun(ctx, logger, cfg.Paths.LogDir, result)
			}

			printRunSummary(cmd, cfg.Clips.Extension, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for clips and the manifest (defaults to paths.output_dir)")
	return cmd
}

// requireFFmpeg refuses to start a run when the cut tool is unavailable,
// so the video is not uploaded only to fail at the first cut.
func requireFFmpeg(binary string) error {
	for _, status := range deps.CheckBinaries(deps.Required(binary)) {
		if !status.Available && !status.Optional {
			return fmt.Errorf("%s not found (%s): %s", status.Name, status.Command, status.Detail)
		}
	}
	return nil
}

func recordRun(ctx context.Context, logger *slog.Logger, logDir string, result *splitter.Result) {
	store, err := runlog.Open(logDir)
	if err != nil {
		logger.Warn("failed to open run history", logging.Error(err))
		return
	}
	defer store.Close()
	err = store.Record(ctx, runlog.Run{
		ID:            result.RunID,
		InputPath:     result.InputPath,
		OutputDir:     result.OutputDir,
		SegmentCount:  len(result.Segments),
		ProducedCount: len(result.ProducedFiles),
		ManifestPath:  result.ManifestPath,
		StartedAt:     result.StartedAt,
		FinishedAt:    result.FinishedAt,
	})
	if err != nil {
		logger.Warn("failed to record run history", logging.Error(err))
	}
}

func printRunSummary(cmd *cobra.Command, extension string, result *splitter.Result) {
	produced := make(map[string]struct{}, len(result.ProducedFiles))
	for _, path := range result.ProducedFiles {
		produced[path] = struct{}{}
	}
	datePart := result.StartedAt.Format("20060102")

	rows := make([][]string, 0, len(result.Segments))
	for _, seg := range result.Segments {
		name := textutil.SanitizeEventID(seg.EventID) + "_" + datePart + "." + extension
		clip := "-"
		if _, ok := produced[filepath.Join(result.OutputDir, name)]; ok {
			clip = name
		}
		rows = append(rows, []string{seg.EventID, seg.StartTime, seg.EndTime, clip})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Event", "Start", "End", "Clip"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
	))
	fmt.Fprintf(out, "Clips: %d/%d", len(result.ProducedFiles), len(result.Segments))
	fmt.Fprintln(out)
	if result.ManifestPath != "" {
		fmt.Fprintf(out, "Manifest: %s\n", result.ManifestPath)
	}
}
