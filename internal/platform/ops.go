package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/gridsync/pkg/core"
)

// Plan computes the pending writes for one snapshot/workbook pair
// without applying anything.
func Plan(ctx context.Context, workbook, snapshot, key string, opts ...Option) (*core.Plan, error) {
	svc, err := New(workbook, snapshot, key, opts...)
	if err != nil {
		return nil, err
	}
	defer svc.Close()

	return svc.Plan(ctx)
}

// Sync computes and applies the pending writes for one snapshot/workbook
// pair, returning the applied plan.
func Sync(ctx context.Context, workbook, snapshot, key string, opts ...Option) (*core.Plan, error) {
	svc, err := New(workbook, snapshot, key, opts...)
	if err != nil {
		return nil, err
	}
	defer svc.Close()

	return svc.Sync(ctx)
}

// JobResult pairs a job with its outcome. Err is non-nil when the job
// failed; Plan may still carry partial information in that case.
type JobResult struct {
	Job  Job
	Plan *core.Plan
	Err  error
}

// RunJobs executes every job in the config sequentially. Jobs are
// independent: one failing does not stop the rest. The returned error
// summarizes failures, if any.
func RunJobs(ctx context.Context, cfg *Config, apply bool, opts ...Option) ([]JobResult, error) {
	results := make([]JobResult, 0, len(cfg.Jobs))
	failed := 0

	for _, job := range cfg.Jobs {
		jobOpts := append([]Option{WithSheet(job.Sheet)}, opts...)

		var plan *core.Plan
		var err error
		if apply {
			plan, err = Sync(ctx, job.Workbook, job.Snapshot, job.Key, jobOpts...)
		} else {
			plan, err = Plan(ctx, job.Workbook, job.Snapshot, job.Key, jobOpts...)
		}

		if err != nil {
			failed++
		}
		results = append(results, JobResult{Job: job, Plan: plan, Err: err})
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d jobs failed", failed, len(cfg.Jobs))
	}
	return results, nil
}
