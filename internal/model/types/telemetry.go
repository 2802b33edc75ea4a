package types

import (
	"time"

	"github.com/motus-health/backend/internal/model"
)

// IngestRequest is the raw payload a device uploads. The device only knows
// time relative to its own boot, so the caller anchors it with currentTime.
type IngestRequest struct {
	CurrentTime         time.Time `json:"currentTime" validate:"required"`
	DeviceTimeElapsedMs int64     `json:"deviceTime" validate:"min=0"`
	Payload             string    `json:"dataFromDevice"`
	PatientID           int       `json:"patientId" validate:"required,min=1"`
}

type IngestResponse struct {
	BatchID string                 `json:"batchId"`
	Frames  []*model.ActivityFrame `json:"frames"`
}

// TelemetryIngestedEvent is published to JetStream after a batch has been
// persisted.
type TelemetryIngestedEvent struct {
	BatchID    string    `json:"batchId"`
	PatientID  int       `json:"patientId"`
	FrameCount int       `json:"frameCount"`
	IngestedAt time.Time `json:"ingestedAt"`
}
