package service

import (
	"context"
	"strconv"
	"time"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/model/cache"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/pkg/crypto"
	"github.com/motus-health/backend/internal/repo"
)

type Patient struct {
	PatientRepo *repo.Patient
	Crypto      *crypto.Crypto
}

func NewPatient(patientRepo *repo.Patient, crypto *crypto.Crypto) *Patient {
	return &Patient{
		PatientRepo: patientRepo,
		Crypto:      crypto,
	}
}

func (s *Patient) CreatePatient(ctx context.Context, req *types.CreatePatientRequest) (*model.Patient, error) {
	hashed, err := s.Crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	patient := &model.Patient{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		HashedPassword: hashed,
		PersonnelID:    req.PersonnelID,
		CreatedAt:      &now,
	}
	if err := s.PatientRepo.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Cache: (set) patient#patientId, 5 min
func (s *Patient) GetPatientByID(ctx context.Context, patientID int) (*model.Patient, error) {
	var patient model.Patient
	err := cache.PatientByID.MutexGetSet(strconv.Itoa(patientID), &patient, func() (model.Patient, error) {
		found, err := s.PatientRepo.GetPatientByID(ctx, patientID)
		if err != nil {
			return model.Patient{}, err
		}
		return *found, nil
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Patient) ListPatients(ctx context.Context, limit, offset int) ([]*model.Patient, error) {
	return s.PatientRepo.ListPatients(ctx, limit, offset)
}

func (s *Patient) ListPatientsByPersonnelID(ctx context.Context, personnelID int) ([]*model.Patient, error) {
	return s.PatientRepo.ListPatientsByPersonnelID(ctx, personnelID)
}

func (s *Patient) ListAllPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.PatientRepo.ListAllPatients(ctx)
}

func (s *Patient) UpdatePatient(ctx context.Context, patientID int, req *types.UpdatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		PatientID:   patientID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PersonnelID: req.PersonnelID,
	}
	if err := s.PatientRepo.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	if err := cache.PatientByID.Delete(strconv.Itoa(patientID)); err != nil {
		return nil, err
	}
	return s.PatientRepo.GetPatientByID(ctx, patientID)
}

func (s *Patient) DeletePatient(ctx context.Context, patientID int) error {
	if err := s.PatientRepo.DeletePatient(ctx, patientID); err != nil {
		return err
	}
	return cache.PatientByID.Delete(strconv.Itoa(patientID))
}
