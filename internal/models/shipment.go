package models

import (
	"time"

	"gorm.io/gorm"
)

// Shipment tabel kiriman
type Shipment struct {
	ID              uint           `gorm:"primarykey" json:"id"`                              // primary key
	OrderID         string         `gorm:"uniqueIndex;not null" json:"order_id"`              // nomor order (unik)
	CustomerName    string         `gorm:"index;not null" json:"customer_name"`               // nama pelanggan
	CustomerPhone   string         `gorm:"type:varchar(32)" json:"customer_phone"`            // telepon pelanggan
	DeliveryAddress string         `gorm:"type:text" json:"delivery_address"`                 // alamat kirim
	ProductName     string         `gorm:"not null" json:"product_name"`                      // nama produk
	DeliveryType    string         `gorm:"type:varchar(32);not null" json:"delivery_type"`    // regular / trade_in / express
	OldProductName  string         `json:"old_product_name,omitempty"`                        // barang lama (tukar tambah)
	InstallationOpt string         `gorm:"type:varchar(32);not null" json:"installation_opt"` // none / vendor_install
	InstallationFee Money          `gorm:"type:decimal(20,2);not null;default:0" json:"installation_fee"`
	SalesName       string         `json:"sales_name"`                                 // nama sales
	SalesPhone      string         `gorm:"type:varchar(32)" json:"sales_phone"`        // telepon sales
	Branch          string         `gorm:"index;not null" json:"branch"`               // cabang asal (tidak berubah setelah dibuat)
	Status          string         `gorm:"index;not null" json:"status"`               // status kiriman (teks bebas, lihat service.StatusModel)
	Courier         string         `json:"courier,omitempty"`                          // kurir
	TrackingNumber  string         `gorm:"index" json:"tracking_number,omitempty"`     // nomor resi
	LastUpdated     time.Time      `gorm:"index" json:"last_updated"`                  // waktu kejadian menurut pelapor
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                    // waktu dibuat (jam server)
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                    // waktu diubah (jam server)
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                             // soft delete
}

// TableName nama tabel
func (Shipment) TableName() string {
	return "shipments"
}
