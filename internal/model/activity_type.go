package model

import (
	"github.com/uptrace/bun"
)

type ActivityType struct {
	bun.BaseModel `bun:"activity_types,alias:at"`

	ActivityTypeID int    `bun:"activity_type_id,pk,autoincrement" json:"id"`
	Type           string `json:"type"`
}
