package service

import (
	"strings"

	"github.com/lacak-next/internal/constants"
)

// Model status dua lapis: daftar kanonik untuk form dan seeding, plus
// pengelompokan kata kunci yang menoleransi teks bebas dari data lama.
// Urutan kanonik bersifat anjuran; peran dengan hak ubah boleh menulis
// status apa pun dan riwayatnya tercatat di StatusLog.

var doneKeywords = []string{"selesai", "diterima"}
var shippingKeywords = []string{"dikirim", "jalan", "pengiriman"}

// CanonicalStatuses daftar status kanonik sesuai urutan siklus hidup
func CanonicalStatuses() []string {
	out := make([]string, len(constants.ShipmentStatusOrder))
	copy(out, constants.ShipmentStatusOrder)
	return out
}

// IsCanonicalStatus apakah status termasuk daftar kanonik
func IsCanonicalStatus(status string) bool {
	trimmed := strings.TrimSpace(status)
	for _, canonical := range constants.ShipmentStatusOrder {
		if trimmed == canonical {
			return true
		}
	}
	return false
}

// ClassifyStatus mengelompokkan teks status bebas ke salah satu bucket.
// Kata kunci selesai menang atas kata kunci kirim; teks tak dikenal
// jatuh ke processing.
func ClassifyStatus(status string) string {
	lowered := strings.ToLower(status)
	for _, keyword := range doneKeywords {
		if strings.Contains(lowered, keyword) {
			return constants.StatusBucketDone
		}
	}
	for _, keyword := range shippingKeywords {
		if strings.Contains(lowered, keyword) {
			return constants.StatusBucketShipping
		}
	}
	return constants.StatusBucketProcessing
}
