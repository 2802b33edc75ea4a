package service

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/pkg/apperr"
)

type fakeFrameCreator struct {
	attempts int
	created  []*model.ActivityFrame
	failWith map[int]error // keyed by attempt index
}

func (f *fakeFrameCreator) CreateFrame(_ context.Context, frame *model.ActivityFrame) error {
	idx := f.attempts
	f.attempts++
	if err, ok := f.failWith[idx]; ok {
		return err
	}
	f.created = append(f.created, frame)
	return nil
}

// stubJetStream only supports PublishAsync; everything else panics.
type stubJetStream struct {
	nats.JetStreamContext

	published [][]byte
	err       error
}

func (s *stubJetStream) PublishAsync(_ string, data []byte, _ ...nats.PubOpt) (nats.PubAckFuture, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.published = append(s.published, data)
	return nil, nil
}

func newTestTelemetry(creator FrameCreator, js *stubJetStream) *Telemetry {
	return &Telemetry{Frames: creator, JS: js}
}

func TestIngestDecodesAndPersists(t *testing.T) {
	creator := &fakeFrameCreator{}
	js := &stubJetStream{}
	s := newTestTelemetry(creator, js)

	currentTime := time.Date(2023, time.June, 14, 9, 0, 0, 0, time.UTC)
	resp, err := s.Ingest(context.Background(), &types.IngestRequest{
		CurrentTime:         currentTime,
		DeviceTimeElapsedMs: 10_000,
		Payload:             "1;0;1000;2;2000;5000",
		PatientID:           7,
	})
	require.NoError(t, err)

	require.Len(t, resp.Frames, 2)
	assert.NotEmpty(t, resp.BatchID)

	// the device was enabled ten seconds before currentTime
	enabledAt := currentTime.Add(-10 * time.Second)
	assert.Equal(t, enabledAt, resp.Frames[0].StartedAt)
	assert.Equal(t, enabledAt.Add(time.Second), resp.Frames[0].FinishedAt)
	assert.Equal(t, 7, resp.Frames[0].PatientID)

	assert.Len(t, creator.created, 2)
	assert.Len(t, js.published, 1)
}

func TestIngestSkipsConflictingFrames(t *testing.T) {
	creator := &fakeFrameCreator{failWith: map[int]error{1: apperr.ErrConflict}}
	js := &stubJetStream{}
	s := newTestTelemetry(creator, js)

	resp, err := s.Ingest(context.Background(), &types.IngestRequest{
		CurrentTime:         time.Date(2023, time.June, 14, 9, 0, 0, 0, time.UTC),
		DeviceTimeElapsedMs: 0,
		Payload:             "1;0;1000;2;2000;5000;3;6000;7000",
		PatientID:           7,
	})
	require.NoError(t, err)

	// the middle frame conflicted; the rest of the batch still landed
	require.Len(t, resp.Frames, 2)
	assert.Equal(t, model.CategoryClapping, resp.Frames[0].Category)
	assert.Equal(t, model.CategoryWashingHands, resp.Frames[1].Category)
	assert.Len(t, js.published, 1)
}

func TestIngestAbortsOnStoreFault(t *testing.T) {
	boom := errors.New("connection reset")
	creator := &fakeFrameCreator{failWith: map[int]error{1: boom}}
	js := &stubJetStream{}
	s := newTestTelemetry(creator, js)

	_, err := s.Ingest(context.Background(), &types.IngestRequest{
		CurrentTime:         time.Date(2023, time.June, 14, 9, 0, 0, 0, time.UTC),
		DeviceTimeElapsedMs: 0,
		Payload:             "1;0;1000;2;2000;5000",
		PatientID:           7,
	})
	require.ErrorIs(t, err, boom)

	// the first frame stays persisted, nothing is published
	assert.Len(t, creator.created, 1)
	assert.Empty(t, js.published)
}

func TestIngestEmptyPayloadStillAcknowledges(t *testing.T) {
	creator := &fakeFrameCreator{}
	js := &stubJetStream{}
	s := newTestTelemetry(creator, js)

	resp, err := s.Ingest(context.Background(), &types.IngestRequest{
		CurrentTime: time.Date(2023, time.June, 14, 9, 0, 0, 0, time.UTC),
		Payload:     "garbage only",
		PatientID:   7,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Frames)
	assert.NotEmpty(t, resp.BatchID)
}

func TestIngestSurvivesPublishFailure(t *testing.T) {
	creator := &fakeFrameCreator{}
	js := &stubJetStream{err: errors.New("nats down")}
	s := newTestTelemetry(creator, js)

	resp, err := s.Ingest(context.Background(), &types.IngestRequest{
		CurrentTime: time.Date(2023, time.June, 14, 9, 0, 0, 0, time.UTC),
		Payload:     "1;0;1000",
		PatientID:   7,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Frames, 1)
}
