package repository

import "time"

// ShipmentListFilter filter daftar kiriman
type ShipmentListFilter struct {
	Page        int
	PageSize    int
	Branch      string
	Status      string
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// StatusLogListFilter filter riwayat status
type StatusLogListFilter struct {
	Page     int
	PageSize int
	OrderID  string
}
