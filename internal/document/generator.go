package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/lacak-next/internal/constants"
	"github.com/lacak-next/internal/models"
)

const (
	defaultWidth = 42
	labelWidth   = 10 // lebar kolom label, contoh: "Alamat  : "
	printTimeFmt = "02/01/2006 15:04"
)

// Generator perender surat jalan teks lebar tetap.
// Keluaran byte-identik untuk snapshot kiriman dan waktu cetak yang sama.
type Generator struct {
	width   int
	baseURL string
}

// NewGenerator membuat generator surat jalan
func NewGenerator(width int, baseURL string) *Generator {
	if width <= 0 {
		width = defaultWidth
	}
	return &Generator{
		width:   width,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// TrackingURL URL lacak publik yang juga dikodekan ke QR
func (g *Generator) TrackingURL(orderID string) string {
	return fmt.Sprintf("%s/?oid=%s", g.baseURL, orderID)
}

// Note merender surat jalan. Tidak pernah gagal selama kiriman ada;
// field kosong ditampilkan sebagai "-".
func (g *Generator) Note(shipment *models.Shipment, printedAt time.Time) string {
	var b strings.Builder
	rule := strings.Repeat("-", g.width)

	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	writeLine(rule)
	writeLine(g.center("SURAT JALAN"))
	writeLine(g.center("(Bukti Pengiriman Barang)"))
	writeLine(rule)
	writeLine("No. Order : " + orDash(shipment.OrderID))
	writeLine("Dicetak   : " + printedAt.Format(printTimeFmt))
	writeLine(rule)
	writeLine("PENERIMA")
	writeLine("Nama    : " + orDash(shipment.CustomerName))
	writeLine("Telp    : " + orDash(shipment.CustomerPhone))
	for _, line := range g.wrapField("Alamat  : ", shipment.DeliveryAddress) {
		writeLine(line)
	}
	writeLine(rule)
	writeLine("PENGIRIM")
	writeLine("Sales   : " + orDash(shipment.SalesName))
	writeLine("Cabang  : " + orDash(shipment.Branch))
	writeLine("Telp    : " + orDash(shipment.SalesPhone))
	writeLine(rule)
	writeLine("BARANG")
	writeLine("Produk  : " + orDash(shipment.ProductName))
	writeLine("Layanan : " + deliveryTypeLabel(shipment.DeliveryType))
	if shipment.DeliveryType == constants.DeliveryTypeTradeIn {
		writeLine("Tukar Tambah: " + orDash(shipment.OldProductName))
	}
	if shipment.InstallationOpt == constants.InstallationOptVendor {
		writeLine("Biaya Pasang: Rp " + shipment.InstallationFee.String())
	}
	writeLine(rule)
	writeLine(g.signatureRow("Sales", "Penerima"))
	writeLine("")
	writeLine("")
	writeLine(g.signatureRow("(..........)", "(..........)"))
	writeLine(rule)
	writeLine("Lacak paket:")
	writeLine(g.TrackingURL(shipment.OrderID))
	writeLine(rule)

	return b.String()
}

func (g *Generator) center(text string) string {
	if len(text) >= g.width {
		return text
	}
	pad := (g.width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}

// signatureRow dua kolom tanda tangan di tepi kiri dan kanan
func (g *Generator) signatureRow(left, right string) string {
	gap := g.width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// wrapField membungkus nilai panjang ke beberapa baris dengan indentasi label
func (g *Generator) wrapField(label, value string) []string {
	value = orDash(value)
	avail := g.width - labelWidth
	if avail < 8 {
		avail = 8
	}

	words := strings.Fields(value)
	if len(words) == 0 {
		return []string{label + "-"}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len(candidate) > avail && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}

	indent := strings.Repeat(" ", labelWidth)
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			out = append(out, label+line)
			continue
		}
		out = append(out, indent+line)
	}
	return out
}

func deliveryTypeLabel(deliveryType string) string {
	switch deliveryType {
	case constants.DeliveryTypeTradeIn:
		return "Tukar Tambah"
	case constants.DeliveryTypeExpress:
		return "Express"
	case constants.DeliveryTypeRegular:
		return "Reguler"
	default:
		return orDash(deliveryType)
	}
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
