package constants

// Status kiriman kanonik (urutan siklus hidup)
const (
	ShipmentStatusAwaitingConfirm = "Menunggu Konfirmasi"
	ShipmentStatusWarehouse       = "Diproses Gudang"
	ShipmentStatusAwaitingCourier = "Menunggu Kurir"
	ShipmentStatusInTransit       = "Dalam Pengiriman"
	ShipmentStatusDelivered       = "Selesai/Diterima"
)

// Urutan status kanonik untuk tampilan dan seeding
var ShipmentStatusOrder = []string{
	ShipmentStatusAwaitingConfirm,
	ShipmentStatusWarehouse,
	ShipmentStatusAwaitingCourier,
	ShipmentStatusInTransit,
	ShipmentStatusDelivered,
}

// Bucket klasifikasi status bebas
const (
	StatusBucketProcessing = "processing"
	StatusBucketShipping   = "shipping"
	StatusBucketDone       = "done"
)

// Jenis pengiriman
const (
	DeliveryTypeRegular = "regular"
	DeliveryTypeTradeIn = "trade_in"
	DeliveryTypeExpress = "express"
)

// Opsi pemasangan
const (
	InstallationOptNone   = "none"
	InstallationOptVendor = "vendor_install"
)

// Peran akses
const (
	RoleGuest      = "guest"
	RoleSales      = "sales"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// Konstanta antrian
const (
	QueueDefault   = "default"
	TaskRenderNote = "shipment:render_note"
)

// Konstanta cache
const (
	RedisPrefixDefault      = "lck"
	CacheKeyDashboardPrefix = "dashboard:summary"
	CacheKeyDashboardAll    = "dashboard:summary:all"
)

// Label cabang gabungan pada tampilan
const (
	BranchAll = "Semua Cabang"
)
