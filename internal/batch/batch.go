// Package batch runs the analyzer over many statements concurrently.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rsgrecovery/statement-analyzer/internal/analyzer"
	"rsgrecovery/statement-analyzer/internal/logging"
	"rsgrecovery/statement-analyzer/internal/models"
	"rsgrecovery/statement-analyzer/internal/textutils"
)

// Job is one statement queued for analysis.
type Job struct {
	// Name identifies the statement, usually the source file name.
	Name string
	// Text is the extracted statement text.
	Text string
}

// Result pairs a job with its analysis outcome.
type Result struct {
	Name   string
	Result *models.AnalysisResult
	Err    error
}

// Processor fans statements out to per-job goroutines with a shared timeout.
type Processor struct {
	settings models.RunSettings
	timeout  time.Duration
	logger   logging.Logger
}

// NewProcessor creates a batch processor. A zero timeout disables the
// per-statement deadline.
func NewProcessor(settings models.RunSettings, timeout time.Duration, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Processor{
		settings: settings,
		timeout:  timeout,
		logger:   logger,
	}
}

// Run analyzes every job and returns one Result per job, in job order.
// A statement that times out or panics yields an empty result and an error
// rather than aborting the batch.
func (p *Processor) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			results[i] = p.runOne(ctx, job)
		}(i, job)
	}
	wg.Wait()

	return results
}

func (p *Processor) runOne(ctx context.Context, job Job) Result {
	start := time.Now()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	settings := p.settings
	if settings.DebtorName == "" {
		settings.DebtorName = textutils.DebtorNameFromFilename(job.Name)
	}

	done := make(chan *models.AnalysisResult, 1)
	go func() {
		a := analyzer.New(settings, p.logger)
		done <- a.Analyze(job.Text)
	}()

	select {
	case result := <-done:
		p.logger.Debug("statement analyzed",
			logging.Field{Key: logging.FieldStatement, Value: job.Name},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).String()})
		return Result{Name: job.Name, Result: result}
	case <-ctx.Done():
		p.logger.Warn("statement analysis abandoned",
			logging.Field{Key: logging.FieldStatement, Value: job.Name},
			logging.Field{Key: logging.FieldReason, Value: ctx.Err().Error()})
		return Result{
			Name:   job.Name,
			Result: models.NewAnalysisResult(),
			Err:    fmt.Errorf("analysis of %s abandoned: %w", job.Name, ctx.Err()),
		}
	}
}
