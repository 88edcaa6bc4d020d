package splitter

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"cleave/internal/cutplan"
	"cleave/internal/fileutil"
	"cleave/internal/logging"
	"cleave/internal/manifest"
	"cleave/internal/segments"
	"cleave/internal/services"
)

// Analyzer obtains the raw segmentation response for a video. Implemented
// by the Gemini client; any failure aborts the run without retry.
type Analyzer interface {
	Analyze(ctx context.Context, videoPath string) (string, error)
}

// Cutter extracts one clip range from the source video. Implemented by the
// ffmpeg wrapper; a failure affects only the one job.
type Cutter interface {
	Cut(ctx context.Context, input string, startSeconds, durationSeconds float64, output string) error
}

// Options configures a pipeline instance.
type Options struct {
	Analyzer  Analyzer
	Cutter    Cutter
	Extension string
	Parallel  int
	Logger    *slog.Logger
}

// Result summarizes one completed run. Segments holds every detected
// segment, including those that produced no clip; ProducedFiles holds only
// the clips that were actually cut, in plan order.
type Result struct {
	RunID         string
	InputPath     string
	OutputDir     string
	Segments      []segments.Segment
	ProducedFiles []string
	ManifestPath  string
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Pipeline runs the full segmentation flow for one video. Each Run is
// independent and stateless; a Pipeline may be reused across runs.
type Pipeline struct {
	analyzer  Analyzer
	cutter    Cutter
	extension string
	parallel  int
	logger    *slog.Logger
	now       func() time.Time
}

// New constructs a pipeline from the supplied options.
func New(opts Options) (*Pipeline, error) {
	if opts.Analyzer == nil {
		return nil, errors.New("splitter: analyzer is required")
	}
	if opts.Cutter == nil {
		return nil, errors.New("splitter: cutter is required")
	}
	extension := opts.Extension
	if extension == "" {
		extension = "mp4"
	}
	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}
	return &Pipeline{
		analyzer:  opts.Analyzer,
		cutter:    opts.Cutter,
		extension: extension,
		parallel:  parallel,
		logger:    logging.NewComponentLogger(opts.Logger, "splitter"),
		now:       time.Now,
	}, nil
}

// Run splits inputPath into per-event clips under outputDir and writes the
// run manifest. It fails with a wrapped sentinel error when a fatal
// precondition is unmet; per-segment problems only shrink the produced file
// list.
func (p *Pipeline) Run(ctx context.Context, inputPath, outputDir string) (*Result, error) {
	started := p.now()
	runID := uuid.NewString()
	logger := p.logger.With(logging.String(logging.FieldRunID, runID))

	if !fileutil.PathExists(inputPath) {
		return nil, services.Wrap(services.ErrInputNotFound, "splitter", "stat input", inputPath, nil)
	}

	if err := fileutil.EnsureDir(outputDir); err != nil {
		return nil, services.Wrap(services.ErrOutputDir, "splitter", "create output dir", outputDir, err)
	}

	// One run per output directory at a time; concurrent runs would race
	// on clip and manifest paths.
	lock := flock.New(filepath.Join(outputDir, ".cleave.lock"))
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrOutputDir, "splitter", "lock output dir", outputDir, err)
	}
	if !acquired {
		return nil, services.Wrap(services.ErrOutputDir, "splitter", "lock output dir",
			"another run is writing to this directory", nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release output dir lock", logging.Error(err))
		}
	}()

	logger.Info("analyzing video", logging.String("input", inputPath))
	response, err := p.analyzer.Analyze(ctx, inputPath)
	if err != nil {
		return nil, services.Wrap(services.ErrAnalysisFailed, "splitter", "analyze video", inputPath, err)
	}

	segs := segments.Extract(response)
	if len(segs) == 0 {
		return nil, services.Wrap(services.ErrNoSegments, "splitter", "extract segments",
			"response contained no usable segment table", nil)
	}
	logger.Info("segments detected", logging.Int("count", len(segs)))

	jobs := cutplan.Plan(segs, started, outputDir, p.extension, logger)
	produced := p.executeCuts(ctx, logger, inputPath, jobs)

	result := &Result{
		RunID:         runID,
		InputPath:     inputPath,
		OutputDir:     outputDir,
		Segments:      segs,
		ProducedFiles: produced,
		StartedAt:     started,
	}

	manifestPath, err := manifest.Write(segs, outputDir, started)
	if err != nil {
		// The clips themselves are the primary artifact; a manifest
		// failure is reported but does not fail the run.
		logger.Warn("failed to write manifest", logging.Error(err))
	} else {
		result.ManifestPath = manifestPath
	}

	result.FinishedAt = p.now()
	logger.Info("run complete",
		logging.Int("segments", len(segs)),
		logging.Int("clips", len(produced)),
		logging.Duration("elapsed", result.FinishedAt.Sub(started)),
	)
	return result, nil
}
