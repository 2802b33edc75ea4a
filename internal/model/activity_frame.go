package model

import (
	"time"

	"github.com/uptrace/bun"
)

// ActivityFrame is one decoded motion interval. Frames are append-only:
// once persisted they are never updated by the telemetry path.
type ActivityFrame struct {
	bun.BaseModel `bun:"activity_frames,alias:af"`

	FrameID    int              `bun:"frame_id,pk,autoincrement" json:"id"`
	PatientID  int              `json:"patientId"`
	Category   ActivityCategory `bun:"category_id" json:"categoryId"`
	StartedAt  time.Time        `json:"startedAt"`
	FinishedAt time.Time        `json:"finishedAt"`
}

func (f *ActivityFrame) Duration() time.Duration {
	return f.FinishedAt.Sub(f.StartedAt)
}
