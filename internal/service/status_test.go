package service

import (
	"testing"

	"github.com/lacak-next/internal/constants"
)

func TestClassifyStatusBuckets(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{constants.ShipmentStatusAwaitingConfirm, constants.StatusBucketProcessing},
		{constants.ShipmentStatusWarehouse, constants.StatusBucketProcessing},
		{constants.ShipmentStatusAwaitingCourier, constants.StatusBucketProcessing},
		{constants.ShipmentStatusInTransit, constants.StatusBucketShipping},
		{constants.ShipmentStatusDelivered, constants.StatusBucketDone},
		// Teks bebas warisan data lama.
		{"Sudah DIKIRIM kemarin", constants.StatusBucketShipping},
		{"barang di jalan", constants.StatusBucketShipping},
		{"pengiriman tahap dua", constants.StatusBucketShipping},
		{"SELESAI", constants.StatusBucketDone},
		{"sudah diterima pelanggan", constants.StatusBucketDone},
		// Kata kunci selesai menang atas kata kunci kirim.
		{"dikirim dan diterima", constants.StatusBucketDone},
		// Tak dikenal atau kosong jatuh ke processing.
		{"ditunda gudang", constants.StatusBucketProcessing},
		{"", constants.StatusBucketProcessing},
	}

	for _, tc := range cases {
		if got := ClassifyStatus(tc.status); got != tc.want {
			t.Fatalf("classify %q want %s got %s", tc.status, tc.want, got)
		}
	}
}

func TestIsCanonicalStatus(t *testing.T) {
	for _, status := range CanonicalStatuses() {
		if !IsCanonicalStatus(status) {
			t.Fatalf("canonical status %q not recognized", status)
		}
	}
	if IsCanonicalStatus("dikirim kemarin") {
		t.Fatalf("free text must not be canonical")
	}
	if IsCanonicalStatus("") {
		t.Fatalf("empty status must not be canonical")
	}
}

func TestCanonicalStatusesCopyIsolated(t *testing.T) {
	first := CanonicalStatuses()
	first[0] = "Diubah"
	second := CanonicalStatuses()
	if second[0] != constants.ShipmentStatusAwaitingConfirm {
		t.Fatalf("canonical list must not be mutable from outside")
	}
}
