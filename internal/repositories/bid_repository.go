package repositories

import (
	"context"
	"errors"

	"gigwork_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

// WithTx возвращает копию репозитория, привязанную к транзакции.
func (r *BidRepository) WithTx(tx *gorm.DB) *BidRepository {
	return &BidRepository{db: tx}
}

func (r *BidRepository) Create(ctx context.Context, bid *models.Bid) error {
	if bid.ID == "" {
		bid.ID = uuid.NewString()
	}
	if bid.Status == "" {
		bid.Status = models.BidStatusPending
	}
	return r.db.WithContext(ctx).Create(bid).Error
}

func (r *BidRepository) FindByID(ctx context.Context, id string) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.WithContext(ctx).First(&bid, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepository) ListByGig(ctx context.Context, gigID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		Order("created_at asc").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepository) ListByFreelancer(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Where("freelancer_id = ?", freelancerID).
		Order("created_at desc").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepository) ExistsForGigAndFreelancer(ctx context.Context, gigID, freelancerID string) (bool, error) {
	var bid models.Bid
	err := r.db.WithContext(ctx).
		Select("id").
		First(&bid, "gig_id = ? AND freelancer_id = ?", gigID, freelancerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *BidRepository) MarkHired(ctx context.Context, bidID string) error {
	return r.db.WithContext(ctx).Model(&models.Bid{}).
		Where("id = ?", bidID).
		Update("status", models.BidStatusHired).Error
}

// ListPendingSiblings возвращает pending-заявки того же гига, кроме выигравшей.
// Вызывается ДО RejectPendingSiblings, чтобы знать, кого именно отклонил
// текущий найм (уже отклоненные ранее заявки сюда не попадают).
func (r *BidRepository) ListPendingSiblings(ctx context.Context, gigID, excludeBidID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Where("gig_id = ? AND id <> ? AND status = ?", gigID, excludeBidID, models.BidStatusPending).
		Order("created_at asc").
		Find(&bids).Error
	return bids, err
}

// RejectPendingSiblings отклоняет все еще-pending заявки гига, кроме выигравшей.
// Идемпотентно: уже rejected заявки условие не затрагивает.
func (r *BidRepository) RejectPendingSiblings(ctx context.Context, gigID, excludeBidID string) error {
	return r.db.WithContext(ctx).Model(&models.Bid{}).
		Where("gig_id = ? AND id <> ? AND status = ?", gigID, excludeBidID, models.BidStatusPending).
		Update("status", models.BidStatusRejected).Error
}
