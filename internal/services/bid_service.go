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

type BidService struct {
	bidRepo *repositories.BidRepository
	gigRepo *repositories.GigRepository
}

func NewBidService(bidRepo *repositories.BidRepository, gigRepo *repositories.GigRepository) *BidService {
	return &BidService{
		bidRepo: bidRepo,
		gigRepo: gigRepo,
	}
}

// PlaceBid создает отклик фрилансера на открытый чужой гиг.
// Порядок проверок повторяет оригинальный placeBid: гиг существует,
// не свой, открыт, отклик еще не размещался.
func (s *BidService) PlaceBid(ctx context.Context, freelancerID string, req *dto.PlaceBidRequest) (*models.Bid, error) {
	gig, err := s.gigRepo.FindByID(ctx, req.GigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if gig.OwnerID == freelancerID {
		return nil, apperrors.ErrOwnBid
	}

	if gig.Status != models.GigStatusOpen {
		return nil, apperrors.ErrInvalidStatus("bid", "Gig is not open for bidding")
	}

	exists, err := s.bidRepo.ExistsForGigAndFreelancer(ctx, req.GigID, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateBid
	}

	bid := &models.Bid{
		GigID:        req.GigID,
		FreelancerID: freelancerID,
		Message:      req.Message,
		Amount:       req.Amount,
		Status:       models.BidStatusPending,
	}
	if err := s.bidRepo.Create(ctx, bid); err != nil {
		// Уникальный индекс (gig_id, freelancer_id) ловит гонку двух
		// одновременных откликов одного фрилансера.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateBid
		}
		return nil, apperrors.InternalError(err)
	}

	return bid, nil
}

// GetGigBids возвращает отклики гига. Только владельцу.
func (s *BidService) GetGigBids(ctx context.Context, actorID, gigID string) ([]models.Bid, error) {
	gig, err := s.gigRepo.FindByID(ctx, gigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if gig.OwnerID != actorID {
		return nil, apperrors.ErrNotGigOwner
	}

	bids, err := s.bidRepo.ListByGig(ctx, gigID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bids, nil
}

func (s *BidService) GetMyBids(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	bids, err := s.bidRepo.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bids, nil
}
