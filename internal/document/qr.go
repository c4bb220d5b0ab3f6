package document

import qrcode "github.com/skip2/go-qrcode"

const qrSizePx = 256

// QRPNG merender QR PNG untuk URL lacak. Deterministik untuk URL yang sama.
func QRPNG(url string) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, qrSizePx)
}
