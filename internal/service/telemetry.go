package service

import (
	"context"
	"errors"
	"time"

	"github.com/dchest/uniuri"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/motus-health/backend/internal/constant"
	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/repo"
	"github.com/motus-health/backend/internal/util/frameutil"
)

// FrameCreator persists decoded frames one at a time.
type FrameCreator interface {
	CreateFrame(ctx context.Context, frame *model.ActivityFrame) error
}

type Telemetry struct {
	Frames FrameCreator
	JS     nats.JetStreamContext
}

func NewTelemetry(frameRepo *repo.Frame, js nats.JetStreamContext) *Telemetry {
	return &Telemetry{
		Frames: frameRepo,
		JS:     js,
	}
}

// Ingest decodes one device upload and persists the resulting frames. The
// device clock only counts milliseconds since power-on, so the moment the
// device was enabled is reconstructed from the caller's wall clock.
//
// Frames are persisted individually: a frame colliding with an already
// ingested row is skipped and the rest of the batch continues, while any
// other store fault aborts the batch and keeps the rows persisted so far.
func (s *Telemetry) Ingest(ctx context.Context, req *types.IngestRequest) (*types.IngestResponse, error) {
	enabledAt := req.CurrentTime.Add(-time.Duration(req.DeviceTimeElapsedMs) * time.Millisecond)
	decoded := frameutil.Decode(req.Payload, enabledAt, req.PatientID)

	batchID := uniuri.NewLen(32)

	persisted := make([]*model.ActivityFrame, 0, len(decoded))
	for _, frame := range decoded {
		err := s.Frames.CreateFrame(ctx, frame)
		if errors.Is(err, apperr.ErrConflict) {
			log.Warn().
				Str("evt.name", "telemetry.ingest.skip").
				Str("batchId", batchID).
				Int("patientId", req.PatientID).
				Time("startedAt", frame.StartedAt).
				Msg("skipping frame conflicting with an already ingested row")
			continue
		} else if err != nil {
			return nil, err
		}
		persisted = append(persisted, frame)
	}

	s.publishIngested(batchID, req.PatientID, len(persisted))

	return &types.IngestResponse{
		BatchID: batchID,
		Frames:  persisted,
	}, nil
}

// publishIngested emits the ingested event without blocking the upload
// response. Publish failures are logged and otherwise ignored.
func (s *Telemetry) publishIngested(batchID string, patientID, frameCount int) {
	event := &types.TelemetryIngestedEvent{
		BatchID:    batchID,
		PatientID:  patientID,
		FrameCount: frameCount,
		IngestedAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().
			Str("evt.name", "telemetry.ingest.publish").
			Err(err).
			Msg("failed to marshal ingested event")
		return
	}
	if _, err := s.JS.PublishAsync(constant.TelemetryIngestedSubject, payload); err != nil {
		log.Warn().
			Str("evt.name", "telemetry.ingest.publish").
			Err(err).
			Str("batchId", batchID).
			Msg("failed to publish ingested event")
	}
}
