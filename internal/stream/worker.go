package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/analytics/forecast"
	"github.com/vitalyze/vitalyze/internal/analytics/quality"
	"github.com/vitalyze/vitalyze/internal/analytics/trend"
	"github.com/vitalyze/vitalyze/internal/config"
	"github.com/vitalyze/vitalyze/internal/export"
	"github.com/vitalyze/vitalyze/internal/ingest"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/models"
	"github.com/vitalyze/vitalyze/internal/utils"
)

// Worker subscribes to the observations subject, analyzes each batch on a
// bounded pool and publishes reports to the reports subject.
type Worker struct {
	logger *logging.Logger
	queue  ingest.Queue
	codec  *export.Codec
	cfg    config.StreamConfig

	analyzer   *trend.Analyzer
	assessor   *quality.Assessor
	forecaster *forecast.Forecaster

	jobs    chan []byte
	wg      sync.WaitGroup
	started bool
	mu      sync.Mutex

	// sendMu orders enqueue sends against Stop closing the jobs channel.
	// A backend goroutine can still deliver between Unsubscribe and the
	// close, so senders hold the read side and Stop flips stopping under
	// the write side before closing.
	sendMu   sync.RWMutex
	stopping bool
}

// NewWorker creates a stream worker over the given queue
func NewWorker(logger *logging.Logger, q ingest.Queue, cfg config.StreamConfig, policy analytics.Policy) *Worker {
	workers := cfg.Workers
	if workers <= 0 {
		workers = utils.DefaultStreamWorkers
	}
	cfg.Workers = workers

	return &Worker{
		logger:     logger,
		queue:      q,
		codec:      export.NewCodec(cfg.Compress),
		cfg:        cfg,
		analyzer:   trend.NewAnalyzer(policy, logger),
		assessor:   quality.NewAssessor(policy, logger),
		forecaster: forecast.NewForecaster(policy, logger),
	}
}

// Start spawns the worker pool and subscribes to the observations subject
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return fmt.Errorf("worker already started")
	}

	w.sendMu.Lock()
	w.jobs = make(chan []byte, w.cfg.Workers*4)
	w.stopping = false
	w.sendMu.Unlock()

	for i := 0; i < w.cfg.Workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for data := range w.jobs {
				w.process(data)
			}
		}()
	}

	if err := w.queue.Subscribe(w.cfg.ObservationsSubject, w.enqueue); err != nil {
		w.sendMu.Lock()
		w.stopping = true
		w.sendMu.Unlock()
		close(w.jobs)
		w.wg.Wait()
		return fmt.Errorf("subscribe %s: %w", w.cfg.ObservationsSubject, err)
	}

	w.started = true
	w.logger.Info("Stream worker started",
		"observations_subject", w.cfg.ObservationsSubject,
		"reports_subject", w.cfg.ReportsSubject,
		"workers", w.cfg.Workers,
	)
	return nil
}

// Stop unsubscribes and drains the pool
func (w *Worker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return nil
	}

	err := w.queue.Unsubscribe(w.cfg.ObservationsSubject)

	// Taking the write side here waits out any enqueue already holding the
	// read side, so no send can race the close below.
	w.sendMu.Lock()
	w.stopping = true
	w.sendMu.Unlock()

	close(w.jobs)
	w.wg.Wait()
	w.started = false

	w.logger.Info("Stream worker stopped")
	return err
}

// enqueue hands a message to the pool. A full or stopping pool rejects the
// message so the queue backend redelivers it.
func (w *Worker) enqueue(data []byte) error {
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()

	if w.stopping {
		return fmt.Errorf("worker stopping")
	}
	select {
	case w.jobs <- data:
		return nil
	default:
		return fmt.Errorf("worker pool saturated")
	}
}

// process analyzes one batch and publishes the report. Malformed or
// unanalyzable batches produce an error report rather than a redelivery
// loop: the input will not improve on retry.
func (w *Worker) process(data []byte) {
	start := time.Now()

	var batch ObservationBatch
	if err := w.codec.Decode(data, &batch); err != nil {
		w.logger.Warn("Dropping undecodable batch", "error", err)
		return
	}
	if batch.BatchID == "" {
		batch.BatchID = uuid.New().String()
	}

	report := w.analyze(&batch)

	frame, err := w.codec.Encode(report)
	if err != nil {
		w.logger.Error("Failed to encode report", "batch_id", batch.BatchID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), utils.PublishTimeout)
	defer cancel()
	if err := w.queue.Publish(ctx, w.cfg.ReportsSubject, frame); err != nil {
		w.logger.Error("Failed to publish report", "batch_id", batch.BatchID, "error", err)
		return
	}

	w.logger.Debug("Batch processed",
		"batch_id", batch.BatchID,
		"data_type", batch.DataType,
		"records", len(batch.Observations),
		"duration", time.Since(start),
	)
}

// analyze runs the engine over one batch
func (w *Worker) analyze(batch *ObservationBatch) *AnalysisReport {
	report := &AnalysisReport{
		BatchID:  batch.BatchID,
		DataType: batch.DataType,
	}

	if len(batch.Observations) > utils.MaxObservationsPerRequest {
		report.Error = fmt.Sprintf("batch exceeds %d observations", utils.MaxObservationsPerRequest)
		return report
	}

	series, err := models.ParseSeries(batch.Observations)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	window, err := models.ParseWindow(batch.StartTime, batch.EndTime)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	dataType := analytics.DataType(batch.DataType)

	analysis, err := w.analyzer.AnalyzeTrends(dataType, series, window)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Analysis = analysis

	assessment, err := w.assessor.AssessDataQuality(dataType, series, time.Now())
	if err == nil {
		report.Quality = &assessment
	}

	if batch.ForecastDays > 0 {
		prediction, err := w.forecaster.PredictTrend(analysis, batch.ForecastDays, time.Now())
		if err != nil {
			w.logger.Warn("Forecast skipped", "batch_id", batch.BatchID, "error", err)
		} else {
			report.Prediction = prediction
		}
	}

	return report
}
