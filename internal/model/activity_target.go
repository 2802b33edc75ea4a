package model

import (
	"time"

	"github.com/uptrace/bun"
)

type ActivityTarget struct {
	bun.BaseModel `bun:"activity_targets,alias:tg"`

	TargetID       int        `bun:"target_id,pk,autoincrement" json:"id"`
	PatientID      int        `json:"patientId"`
	ActivityTypeID int        `json:"activityTypeId"`
	PersonnelID    int        `json:"personnelId"`
	Date           *time.Time `json:"date"`
}
