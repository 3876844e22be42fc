package repositories

import (
	"context"

	"gigwork_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{db: db}
}

// WithTx возвращает копию репозитория, привязанную к транзакции.
// Используется движком найма, чтобы все чтения/записи шли через один tx.
func (r *GigRepository) WithTx(tx *gorm.DB) *GigRepository {
	return &GigRepository{db: tx}
}

// GigCriteria - фильтры листинга (как в оригинальном GET /api/gigs)
type GigCriteria struct {
	Keyword string           `form:"keyword"`
	Status  models.GigStatus `form:"status" validate:"omitempty,is-gig-status"`
}

func (r *GigRepository) Create(ctx context.Context, gig *models.Gig) error {
	if gig.ID == "" {
		gig.ID = uuid.NewString()
	}
	if gig.Status == "" {
		gig.Status = models.GigStatusOpen
	}
	return r.db.WithContext(ctx).Create(gig).Error
}

func (r *GigRepository) FindByID(ctx context.Context, id string) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.WithContext(ctx).First(&gig, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepository) Search(ctx context.Context, criteria GigCriteria) ([]models.Gig, error) {
	query := r.db.WithContext(ctx).Model(&models.Gig{})

	if criteria.Keyword != "" {
		query = query.Where("title LIKE ?", "%"+criteria.Keyword+"%")
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var gigs []models.Gig
	err := query.Order("created_at desc").Find(&gigs).Error
	return gigs, err
}

func (r *GigRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&gigs).Error
	return gigs, err
}

// ClaimOpen переводит гиг open -> assigned охраняемым UPDATE.
// false без ошибки означает, что гиг уже не open: конкурирующий найм
// успел первым. Это единственное место, где open -> assigned возможен.
func (r *GigRepository) ClaimOpen(ctx context.Context, gigID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Gig{}).
		Where("id = ? AND status = ?", gigID, models.GigStatusOpen).
		Update("status", models.GigStatusAssigned)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkCompleted переводит гиг assigned -> completed (тоже охраняемо).
func (r *GigRepository) MarkCompleted(ctx context.Context, gigID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Gig{}).
		Where("id = ? AND status = ?", gigID, models.GigStatusAssigned).
		Update("status", models.GigStatusCompleted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
