package model

import (
	"time"

	"github.com/uptrace/bun"
)

type Personnel struct {
	bun.BaseModel `bun:"personnel,alias:mp"`

	PersonnelID    int        `bun:"personnel_id,pk,autoincrement" json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	Position       string     `json:"position"`
	CreatedAt      *time.Time `json:"createdAt"`
}
