// Package summarywkr periodically recomputes yesterday's summary for every
// patient. Summaries are derived data and never stored; the sweep exists to
// surface aggregation faults on fresh telemetry before clinicians pull the
// numbers, and doubles as a liveness signal via the heartbeat URL.
package summarywkr

import (
	"context"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/app/appconfig"
	"github.com/motus-health/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	PatientService *service.Patient
	SummaryService *service.Summary
}

type Worker struct {
	// count counts batches worker has completed so far
	count int

	// sep describes the separation time in-between different patients
	sep time.Duration

	// interval describes the interval in-between different batches of job running
	interval time.Duration

	// timeout bounds a single batch
	timeout time.Duration

	heartbeatURL string

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("worker: disabled")
		return
	}
	(&Worker{
		sep:          conf.WorkerSeparation,
		interval:     conf.WorkerInterval,
		timeout:      conf.WorkerTimeout,
		heartbeatURL: conf.WorkerHeartbeatURL,
		WorkerDeps:   deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	parentCtx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			w.batch(parentCtx)
			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}

func (w *Worker) batch(parentCtx context.Context) {
	ctx, cancel := context.WithTimeout(parentCtx, w.timeout)
	defer cancel()

	log.Info().
		Int("count", w.count).
		Msg("worker batch started")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	patients, err := w.PatientService.ListAllPatients(ctx)
	if err != nil {
		log.Error().Err(err).Msg("worker: failed to list patients")
		return
	}

	for _, patient := range patients {
		if _, err := w.SummaryService.Daily(ctx, patient.PatientID, yesterday); err != nil {
			log.Error().
				Err(err).
				Int("patientId", patient.PatientID).
				Msg("worker: failed to compute daily summary")
			continue
		}
		time.Sleep(w.sep)
	}

	log.Info().Int("count", w.count).Msg("worker batch finished")

	w.heartbeat(ctx)
}

func (w *Worker) heartbeat(ctx context.Context) {
	if w.heartbeatURL == "" {
		return
	}

	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.heartbeatURL, nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return errors.Errorf("heartbeat endpoint returned status %d", resp.StatusCode)
		}
		return nil
	}, retry.Attempts(3), retry.Context(ctx))
	if err != nil {
		log.Warn().Err(err).Msg("worker: failed to send heartbeat")
	}
}

func (w *Worker) Count() int {
	return w.count
}
