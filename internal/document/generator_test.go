package document

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lacak-next/internal/constants"
	"github.com/lacak-next/internal/models"

	"github.com/shopspring/decimal"
)

func sampleShipment() *models.Shipment {
	return &models.Shipment{
		OrderID:         "240101001",
		CustomerName:    "Budi Santoso",
		CustomerPhone:   "081234567890",
		DeliveryAddress: "Jl. Merdeka Raya No. 123, RT 04 RW 05, Kelurahan Menteng, Jakarta Pusat",
		ProductName:     "Kulkas 2 Pintu 300L",
		DeliveryType:    constants.DeliveryTypeTradeIn,
		OldProductName:  "Kulkas 1 Pintu Lama",
		InstallationOpt: constants.InstallationOptVendor,
		InstallationFee: models.NewMoneyFromDecimal(decimal.NewFromInt(150000)),
		SalesName:       "Siti Aminah",
		SalesPhone:      "081298765432",
		Branch:          "Jakarta",
		Status:          constants.ShipmentStatusAwaitingConfirm,
	}
}

func TestNoteDeterministicBytes(t *testing.T) {
	gen := NewGenerator(42, "https://lacak.example.com")
	printedAt := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	shipment := sampleShipment()

	first := gen.Note(shipment, printedAt)
	second := gen.Note(shipment, printedAt)
	if first != second {
		t.Fatalf("note output not byte-stable")
	}
}

func TestNoteLayout(t *testing.T) {
	gen := NewGenerator(42, "https://lacak.example.com")
	printedAt := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	note := gen.Note(sampleShipment(), printedAt)

	if !strings.HasSuffix(note, "\n") {
		t.Fatalf("note must end with newline")
	}
	for _, want := range []string{
		"SURAT JALAN",
		"(Bukti Pengiriman Barang)",
		"No. Order : 240101001",
		"Dicetak   : 20/08/2026 14:30",
		"PENERIMA",
		"Nama    : Budi Santoso",
		"PENGIRIM",
		"Cabang  : Jakarta",
		"BARANG",
		"Layanan : Tukar Tambah",
		"Tukar Tambah: Kulkas 1 Pintu Lama",
		"Biaya Pasang: Rp 150000.00",
		"Lacak paket:",
		"https://lacak.example.com/?oid=240101001",
	} {
		if !strings.Contains(note, want) {
			t.Fatalf("note missing %q:\n%s", want, note)
		}
	}

	rule := strings.Repeat("-", 42)
	for _, line := range strings.Split(strings.TrimRight(note, "\n"), "\n") {
		if len(line) > 42 && line != rule {
			// Hanya URL lacak yang boleh melebihi lebar kolom.
			if !strings.HasPrefix(line, "https://") {
				t.Fatalf("line exceeds width: %q", line)
			}
		}
	}
}

func TestNoteMissingFieldsRenderDash(t *testing.T) {
	gen := NewGenerator(42, "https://lacak.example.com")
	shipment := &models.Shipment{
		OrderID:      "240101002",
		DeliveryType: constants.DeliveryTypeRegular,
	}
	note := gen.Note(shipment, time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC))

	for _, want := range []string{
		"Nama    : -",
		"Telp    : -",
		"Alamat  : -",
		"Sales   : -",
		"Cabang  : -",
		"Produk  : -",
	} {
		if !strings.Contains(note, want) {
			t.Fatalf("note missing placeholder %q:\n%s", want, note)
		}
	}
	if strings.Contains(note, "Tukar Tambah:") {
		t.Fatalf("regular delivery must not render trade-in line")
	}
	if strings.Contains(note, "Biaya Pasang:") {
		t.Fatalf("no installation must not render fee line")
	}
}

func TestNoteAddressWraps(t *testing.T) {
	gen := NewGenerator(42, "https://lacak.example.com")
	note := gen.Note(sampleShipment(), time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC))

	var addressLines int
	for _, line := range strings.Split(note, "\n") {
		if strings.HasPrefix(line, "Alamat  : ") || strings.HasPrefix(line, strings.Repeat(" ", 10)) {
			addressLines++
		}
	}
	if addressLines < 2 {
		t.Fatalf("long address should wrap to multiple lines, got %d", addressLines)
	}
}

func TestTrackingURLShape(t *testing.T) {
	gen := NewGenerator(42, "https://lacak.example.com/")
	got := gen.TrackingURL("240101001")
	want := "https://lacak.example.com/?oid=240101001"
	if got != want {
		t.Fatalf("tracking url want %s got %s", want, got)
	}
}

func TestQRPNGDeterministic(t *testing.T) {
	url := "https://lacak.example.com/?oid=240101001"
	first, err := QRPNG(url)
	if err != nil {
		t.Fatalf("qr encode failed: %v", err)
	}
	second, err := QRPNG(url)
	if err != nil {
		t.Fatalf("qr encode failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("qr output not deterministic")
	}
	if len(first) == 0 || !bytes.HasPrefix(first, []byte("\x89PNG")) {
		t.Fatalf("qr output is not a png")
	}
}
