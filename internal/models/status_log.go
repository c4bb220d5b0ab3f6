package models

import "time"

// StatusLog riwayat perubahan status kiriman
// Catatan: setiap perubahan status dicatat apa adanya, termasuk yang keluar
// dari urutan kanonik, supaya riwayat tetap bisa diaudit.
type StatusLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`                      // primary key
	OrderID     string    `gorm:"index;not null" json:"order_id"`            // nomor order
	ActorRole   string    `gorm:"type:varchar(32);index" json:"actor_role"`  // peran pengubah
	ActorBranch string    `gorm:"index" json:"actor_branch"`                 // cabang pengubah
	FromStatus  string    `json:"from_status"`                               // status sebelum
	ToStatus    string    `gorm:"not null" json:"to_status"`                 // status sesudah
	ReportedAt  time.Time `gorm:"index" json:"reported_at"`                  // waktu kejadian menurut pelapor
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                   // waktu pencatatan (jam server)
}

// TableName nama tabel
func (StatusLog) TableName() string {
	return "shipment_status_logs"
}
