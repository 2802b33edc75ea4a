package types

import (
	"time"
)

type CreatePersonnelRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Position  string `json:"position" validate:"required"`
}

type CreatePatientRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PersonnelID int    `json:"personnelId" validate:"required,min=1"`
}

type CreateDeviceRequest struct {
	MacAddress string `json:"macAddress" validate:"required,mac"`
	PatientID  int    `json:"patientId" validate:"min=0"`
}

type CreateActivityTypeRequest struct {
	Type string `json:"type" validate:"required"`
}

type CreateActivityTargetRequest struct {
	PatientID      int        `json:"patientId" validate:"required,min=1"`
	ActivityTypeID int        `json:"activityTypeId" validate:"required,min=1"`
	PersonnelID    int        `json:"personnelId" validate:"required,min=1"`
	Date           *time.Time `json:"date"`
}

// CreateFrameRequest creates one activity frame directly, bypassing the
// telemetry decoder. FinishedAt must not precede StartedAt.
type CreateFrameRequest struct {
	PatientID  int       `json:"patientId" validate:"required,min=1"`
	CategoryID int       `json:"categoryId" validate:"min=0,max=9"`
	StartedAt  time.Time `json:"startedAt" validate:"required"`
	FinishedAt time.Time `json:"finishedAt" validate:"required"`
}

type UpdatePersonnelRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Position  string `json:"position" validate:"required"`
}

type UpdatePatientRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PersonnelID int    `json:"personnelId" validate:"required,min=1"`
}

type UpdateActivityTypeRequest struct {
	Type string `json:"type" validate:"required"`
}

type UpdateActivityTargetRequest struct {
	PatientID      int        `json:"patientId" validate:"required,min=1"`
	ActivityTypeID int        `json:"activityTypeId" validate:"required,min=1"`
	PersonnelID    int        `json:"personnelId" validate:"required,min=1"`
	Date           *time.Time `json:"date"`
}

type UpdateFrameRequest struct {
	CategoryID int       `json:"categoryId" validate:"min=0,max=9"`
	StartedAt  time.Time `json:"startedAt" validate:"required"`
	FinishedAt time.Time `json:"finishedAt" validate:"required"`
}
