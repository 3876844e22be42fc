package services

import (
	"context"
	"errors"

	"gigwork_backend/internal/models"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GigService struct {
	gigRepo *repositories.GigRepository
}

func NewGigService(gigRepo *repositories.GigRepository) *GigService {
	return &GigService{gigRepo: gigRepo}
}

func (s *GigService) CreateGig(ctx context.Context, ownerID string, req *dto.CreateGigRequest) (*models.Gig, error) {
	gig := &models.Gig{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Status:      models.GigStatusOpen,
	}
	if err := s.gigRepo.Create(ctx, gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *GigService) GetGig(ctx context.Context, id string) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *GigService) SearchGigs(ctx context.Context, criteria repositories.GigCriteria) ([]models.Gig, error) {
	gigs, err := s.gigRepo.Search(ctx, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gigs, nil
}

func (s *GigService) GetMyGigs(ctx context.Context, ownerID string) ([]models.Gig, error) {
	gigs, err := s.gigRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gigs, nil
}

// CompleteGig переводит assigned -> completed. Только владелец и только
// из assigned: других переходов из completed/open здесь нет.
func (s *GigService) CompleteGig(ctx context.Context, actorID, gigID string) (*models.Gig, error) {
	gig, err := s.GetGig(ctx, gigID)
	if err != nil {
		return nil, err
	}

	if gig.OwnerID != actorID {
		return nil, apperrors.ErrNotGigOwner
	}

	completed, err := s.gigRepo.MarkCompleted(ctx, gigID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !completed {
		return nil, apperrors.ErrInvalidStatus("gig", "Only an assigned gig can be completed")
	}

	gig.Status = models.GigStatusCompleted
	return gig, nil
}
