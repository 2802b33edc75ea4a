package model

import (
	"time"

	"github.com/uptrace/bun"
)

type Patient struct {
	bun.BaseModel `bun:"patients,alias:pt"`

	PatientID      int        `bun:"patient_id,pk,autoincrement" json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	PersonnelID    int        `json:"personnelId"`
	CreatedAt      *time.Time `json:"createdAt"`
}
