package services

import (
	"context"
	"errors"
	"fmt"

	"gigwork_backend/internal/logger"
	"gigwork_backend/internal/models"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// HireService - движок найма. Единственное место, где гиг переходит
// open -> assigned, выигравшая заявка становится hired, а остальные
// pending-заявки гига - rejected. Все три записи меняются в одной
// транзакции; уведомления уходят строго после коммита.
type HireService struct {
	db                  *gorm.DB
	gigRepo             *repositories.GigRepository
	bidRepo             *repositories.BidRepository
	notificationService NotificationService
}

func NewHireService(
	db *gorm.DB,
	gigRepo *repositories.GigRepository,
	bidRepo *repositories.BidRepository,
	notificationService NotificationService,
) *HireService {
	return &HireService{
		db:                  db,
		gigRepo:             gigRepo,
		bidRepo:             bidRepo,
		notificationService: notificationService,
	}
}

// Hire выполняет найм фрилансера по заявке bidID от имени actorID.
//
// Предусловия проверяются по порядку, каждое со своей ошибкой:
// заявка существует, гиг существует, actor - владелец, гиг открыт.
// Конкурирующий найм того же гига получает Conflict: охраняемый UPDATE
// в ClaimOpen пропускает ровно один переход open -> assigned.
func (s *HireService) Hire(ctx context.Context, actorID, bidID string) (*dto.HireResult, error) {
	var result dto.HireResult
	var gig *models.Gig

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gigs := s.gigRepo.WithTx(tx)
		bids := s.bidRepo.WithTx(tx)

		bid, err := bids.FindByID(ctx, bidID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBidNotFound
			}
			return apperrors.InternalError(err)
		}

		gig, err = gigs.FindByID(ctx, bid.GigID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGigNotFound
			}
			return apperrors.InternalError(err)
		}

		if gig.OwnerID != actorID {
			return apperrors.ErrNotGigOwner
		}

		if gig.Status != models.GigStatusOpen {
			return apperrors.ErrGigNotOpen
		}

		// Повторная проверка статуса под защитой транзакции: UPDATE
		// с условием status='open' проходит только у одного из
		// конкурирующих наймов, второй видит 0 строк и откатывается.
		claimed, err := gigs.ClaimOpen(ctx, gig.ID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if !claimed {
			return apperrors.ErrGigNotOpen
		}
		gig.Status = models.GigStatusAssigned

		// Проигравших фиксируем до отклонения, чтобы знать, кого
		// отклонил именно этот вызов.
		losers, err := bids.ListPendingSiblings(ctx, gig.ID, bid.ID)
		if err != nil {
			return apperrors.InternalError(err)
		}

		if err := bids.MarkHired(ctx, bid.ID); err != nil {
			return apperrors.InternalError(err)
		}
		bid.Status = models.BidStatusHired

		if err := bids.RejectPendingSiblings(ctx, gig.ID, bid.ID); err != nil {
			return apperrors.InternalError(err)
		}
		for i := range losers {
			losers[i].Status = models.BidStatusRejected
		}

		result.HiredBid = bid
		result.RejectedBids = losers
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Коммит уже случился: рассылка уведомлений best-effort и ни при
	// каких ошибках не отменяет найм.
	s.dispatchHireNotifications(ctx, gig, &result)

	return &result, nil
}

func (s *HireService) dispatchHireNotifications(ctx context.Context, gig *models.Gig, result *dto.HireResult) {
	hiredMsg := fmt.Sprintf("Congratulations! You have been hired for %s!", gig.Title)
	if _, err := s.notificationService.Notify(ctx, result.HiredBid.FreelancerID, models.NotificationTypeHired, hiredMsg, gig.ID); err != nil {
		logger.CtxWithError(ctx, "failed to deliver hired notification", err,
			"gig_id", gig.ID,
			"freelancer_id", result.HiredBid.FreelancerID,
		)
	}

	rejectedMsg := fmt.Sprintf("Thank you for your interest. Another freelancer has been selected for %s.", gig.Title)
	for _, loser := range result.RejectedBids {
		if _, err := s.notificationService.Notify(ctx, loser.FreelancerID, models.NotificationTypeRejected, rejectedMsg, gig.ID); err != nil {
			logger.CtxWithError(ctx, "failed to deliver rejected notification", err,
				"gig_id", gig.ID,
				"freelancer_id", loser.FreelancerID,
			)
		}
	}
}
