package repository

import (
	"errors"
	"strings"
	"unicode"

	"github.com/lacak-next/internal/constants"
	"github.com/lacak-next/internal/models"

	"gorm.io/gorm"
)

// Panjang minimum query numerik agar diperlakukan sebagai nomor order persis.
const exactOrderIDMinDigits = 6

// ShipmentRepository akses data kiriman
type ShipmentRepository interface {
	Create(shipment *models.Shipment) error
	GetByOrderID(orderID string) (*models.Shipment, error)
	Find(query string) ([]models.Shipment, error)
	List(filter ShipmentListFilter) ([]models.Shipment, int64, error)
	Update(orderID string, updates map[string]interface{}) error
	Delete(orderID string) error
	PurgeAll() (int64, error)
	CountByStatus(branch string) (map[string]int64, error)
	WithTx(tx *gorm.DB) *GormShipmentRepository
}

// GormShipmentRepository implementasi GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository membuat repository kiriman
func NewShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// WithTx mengikat transaksi
func (r *GormShipmentRepository) WithTx(tx *gorm.DB) *GormShipmentRepository {
	if tx == nil {
		return r
	}
	return &GormShipmentRepository{db: tx}
}

// Create menyimpan kiriman baru; nomor order ganda kembali sebagai gorm.ErrDuplicatedKey
func (r *GormShipmentRepository) Create(shipment *models.Shipment) error {
	return r.db.Create(shipment).Error
}

// GetByOrderID mengambil kiriman berdasarkan nomor order
func (r *GormShipmentRepository) GetByOrderID(orderID string) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.Where("order_id = ?", orderID).First(&shipment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

// Find pencarian dua strategi: query numerik panjang dicocokkan persis ke
// nomor order, selain itu cocok persis nomor order ATAU substring nama
// pelanggan tanpa memandang huruf besar-kecil.
func (r *GormShipmentRepository) Find(query string) ([]models.Shipment, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []models.Shipment{}, nil
	}

	var shipments []models.Shipment
	q := r.db.Model(&models.Shipment{})
	if isBareNumeric(trimmed) && len(trimmed) >= exactOrderIDMinDigits {
		q = q.Where("order_id = ?", trimmed)
	} else {
		like := nameLikeCondition(dbDialectName(r.db), "customer_name")
		q = q.Where("order_id = ? OR "+like, trimmed, "%"+trimmed+"%")
	}
	if err := q.Order("created_at desc").Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

// List daftar kiriman dengan filter dan paginasi
func (r *GormShipmentRepository) List(filter ShipmentListFilter) ([]models.Shipment, int64, error) {
	query := r.db.Model(&models.Shipment{})

	if filter.Branch != "" {
		query = query.Where("branch = ?", filter.Branch)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := nameLikeCondition(dbDialectName(r.db), "customer_name")
		query = query.Where("order_id = ? OR "+like, filter.Search, "%"+filter.Search+"%")
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var shipments []models.Shipment
	if err := query.Order("created_at desc").Find(&shipments).Error; err != nil {
		return nil, 0, err
	}
	return shipments, total, nil
}

// Update pembaruan parsial berbasis map; kolom yang tidak disebut tidak disentuh
func (r *GormShipmentRepository) Update(orderID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.Model(&models.Shipment{}).Where("order_id = ?", orderID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft delete satu kiriman
func (r *GormShipmentRepository) Delete(orderID string) error {
	result := r.db.Where("order_id = ?", orderID).Delete(&models.Shipment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeAll menghapus permanen seluruh kiriman termasuk yang sudah soft delete
func (r *GormShipmentRepository) PurgeAll() (int64, error) {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&models.Shipment{})
	return result.RowsAffected, result.Error
}

// CountByStatus jumlah kiriman per status, opsional dibatasi satu cabang
func (r *GormShipmentRepository) CountByStatus(branch string) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	query := r.db.Model(&models.Shipment{}).
		Select("status, COUNT(*) AS total").
		Group("status")
	if branch != "" && branch != constants.BranchAll {
		query = query.Where("branch = ?", branch)
	}

	var rows []row
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

func isBareNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
