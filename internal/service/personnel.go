package service

import (
	"context"
	"time"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/pkg/crypto"
	"github.com/motus-health/backend/internal/repo"
)

type Personnel struct {
	PersonnelRepo *repo.Personnel
	Crypto        *crypto.Crypto
}

func NewPersonnel(personnelRepo *repo.Personnel, crypto *crypto.Crypto) *Personnel {
	return &Personnel{
		PersonnelRepo: personnelRepo,
		Crypto:        crypto,
	}
}

func (s *Personnel) CreatePersonnel(ctx context.Context, req *types.CreatePersonnelRequest) (*model.Personnel, error) {
	hashed, err := s.Crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	personnel := &model.Personnel{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		HashedPassword: hashed,
		Position:       req.Position,
		CreatedAt:      &now,
	}
	if err := s.PersonnelRepo.CreatePersonnel(ctx, personnel); err != nil {
		return nil, err
	}
	return personnel, nil
}

func (s *Personnel) GetPersonnelByID(ctx context.Context, personnelID int) (*model.Personnel, error) {
	return s.PersonnelRepo.GetPersonnelByID(ctx, personnelID)
}

func (s *Personnel) ListPersonnel(ctx context.Context, limit, offset int) ([]*model.Personnel, error) {
	return s.PersonnelRepo.ListPersonnel(ctx, limit, offset)
}

func (s *Personnel) UpdatePersonnel(ctx context.Context, personnelID int, req *types.UpdatePersonnelRequest) (*model.Personnel, error) {
	personnel := &model.Personnel{
		PersonnelID: personnelID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Position:    req.Position,
	}
	if err := s.PersonnelRepo.UpdatePersonnel(ctx, personnel); err != nil {
		return nil, err
	}
	return s.PersonnelRepo.GetPersonnelByID(ctx, personnelID)
}

func (s *Personnel) DeletePersonnel(ctx context.Context, personnelID int) error {
	return s.PersonnelRepo.DeletePersonnel(ctx, personnelID)
}
