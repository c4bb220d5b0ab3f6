package service

import "errors"

// Kesalahan bisnis yang dipetakan handler ke kode respons
var (
	ErrShipmentNotFound   = errors.New("kiriman tidak ditemukan")
	ErrDuplicateOrderID   = errors.New("nomor order sudah terdaftar")
	ErrInvalidCredentials = errors.New("kredensial tidak cocok")
	ErrGatekeeperDenied   = errors.New("kode akses aplikasi salah")
	ErrUnknownRole        = errors.New("peran tidak dikenal")
	ErrUnknownBranch      = errors.New("cabang tidak terdaftar")

	ErrOrderIDRequired       = errors.New("nomor order wajib diisi")
	ErrCustomerNameRequired  = errors.New("nama pelanggan wajib diisi")
	ErrProductNameRequired   = errors.New("nama produk wajib diisi")
	ErrBranchRequired        = errors.New("cabang wajib diisi")
	ErrDeliveryTypeInvalid   = errors.New("jenis pengiriman tidak dikenal")
	ErrTradeInDetailRequired = errors.New("barang lama wajib diisi untuk tukar tambah")
	ErrInstallOptInvalid     = errors.New("opsi pemasangan tidak dikenal")
	ErrInstallFeeRequired    = errors.New("biaya pasang wajib lebih dari nol")
	ErrNoFieldsToUpdate      = errors.New("tidak ada field yang diubah")
)

// IsValidationError apakah err termasuk kesalahan validasi input
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrOrderIDRequired,
		ErrCustomerNameRequired,
		ErrProductNameRequired,
		ErrBranchRequired,
		ErrDeliveryTypeInvalid,
		ErrTradeInDetailRequired,
		ErrInstallOptInvalid,
		ErrInstallFeeRequired,
		ErrNoFieldsToUpdate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
