package splitter

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"cleave/internal/cutplan"
	"cleave/internal/logging"
)

// executeCuts runs every planned job and returns the output paths that were
// produced, in plan order. Cut failures are logged and the job is dropped;
// they never abort the remaining jobs.
//
// Jobs that target the same output path are chained and executed in plan
// order within the chain, so the last planned job wins the file just as it
// would under serial execution.
func (p *Pipeline) executeCuts(ctx context.Context, logger *slog.Logger, input string, jobs []cutplan.Job) []string {
	if len(jobs) == 0 {
		return nil
	}

	chains := chainByOutput(jobs)

	var mu sync.Mutex
	succeeded := make(map[int]bool, len(jobs))

	var group errgroup.Group
	group.SetLimit(p.parallel)
	for _, chain := range chains {
		chain := chain
		group.Go(func() error {
			for _, idx := range chain {
				job := jobs[idx]
				jobLogger := logger.With(
					logging.String(logging.FieldEventID, job.Segment.EventID),
					logging.String("output", job.OutputPath),
				)
				if err := p.cutter.Cut(ctx, input, job.StartSeconds, job.DurationSeconds, job.OutputPath); err != nil {
					jobLogger.Error("clip extraction failed", logging.Error(err))
					continue
				}
				jobLogger.Info("clip extracted",
					logging.Float64("start_seconds", job.StartSeconds),
					logging.Float64("duration_seconds", job.DurationSeconds),
				)
				mu.Lock()
				succeeded[idx] = true
				mu.Unlock()
			}
			return nil
		})
	}
	// Goroutines only report failures through the log; Wait cannot error.
	_ = group.Wait()

	produced := make([]string, 0, len(succeeded))
	for idx := range jobs {
		if succeeded[idx] {
			produced = append(produced, jobs[idx].OutputPath)
		}
	}
	return produced
}

// chainByOutput groups job indexes by output path, preserving plan order
// both across chains and within each chain.
func chainByOutput(jobs []cutplan.Job) [][]int {
	byPath := make(map[string][]int, len(jobs))
	var order []string
	for idx, job := range jobs {
		if _, seen := byPath[job.OutputPath]; !seen {
			order = append(order, job.OutputPath)
		}
		byPath[job.OutputPath] = append(byPath[job.OutputPath], idx)
	}
	chains := make([][]int, 0, len(order))
	for _, path := range order {
		chains = append(chains, byPath[path])
	}
	return chains
}
