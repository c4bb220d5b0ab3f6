package public

import (
	"strings"

	"github.com/lacak-next/internal/http/response"
	"github.com/lacak-next/internal/models"

	"github.com/gin-gonic/gin"
)

// TrackResult hasil pencarian halaman lacak
type TrackResult struct {
	Query     string            `json:"query"`
	Shipments []models.Shipment `json:"shipments"`
}

// Track pencarian kiriman publik. ?oid= mencari persis satu nomor order
// (kontrak tautan QR), ?q= memakai pencarian pintar nomor-atau-nama.
// Selalu 200; gangguan penyimpanan menghasilkan daftar kosong.
func (h *Handler) Track(c *gin.Context) {
	oid := strings.TrimSpace(c.Query("oid"))
	if oid != "" {
		shipments := []models.Shipment{}
		if shipment := h.ShipmentService.TrackByOrderID(oid); shipment != nil {
			shipments = append(shipments, *shipment)
		}
		response.Success(c, TrackResult{Query: oid, Shipments: shipments})
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.Success(c, TrackResult{Query: "", Shipments: []models.Shipment{}})
		return
	}
	response.Success(c, TrackResult{Query: query, Shipments: h.ShipmentService.Track(query)})
}
