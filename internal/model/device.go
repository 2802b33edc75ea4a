package model

import (
	"time"

	"github.com/uptrace/bun"
)

type Device struct {
	bun.BaseModel `bun:"devices,alias:dv"`

	DeviceID   int        `bun:"device_id,pk,autoincrement" json:"id"`
	MacAddress string     `json:"macAddress"`
	PatientID  int        `json:"patientId"`
	CreatedAt  *time.Time `json:"createdAt"`
}
