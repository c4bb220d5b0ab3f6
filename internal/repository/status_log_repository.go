package repository

import (
	"github.com/lacak-next/internal/models"

	"gorm.io/gorm"
)

// StatusLogRepository akses data riwayat status
type StatusLogRepository interface {
	Append(log *models.StatusLog) error
	ListByOrderID(filter StatusLogListFilter) ([]models.StatusLog, int64, error)
}

// GormStatusLogRepository implementasi GORM
type GormStatusLogRepository struct {
	db *gorm.DB
}

// NewStatusLogRepository membuat repository riwayat status
func NewStatusLogRepository(db *gorm.DB) *GormStatusLogRepository {
	return &GormStatusLogRepository{db: db}
}

// Append menambah satu baris riwayat
func (r *GormStatusLogRepository) Append(log *models.StatusLog) error {
	return r.db.Create(log).Error
}

// ListByOrderID riwayat status satu kiriman, terbaru lebih dulu
func (r *GormStatusLogRepository) ListByOrderID(filter StatusLogListFilter) ([]models.StatusLog, int64, error) {
	query := r.db.Model(&models.StatusLog{}).Where("order_id = ?", filter.OrderID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var logs []models.StatusLog
	if err := query.Order("id desc").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
