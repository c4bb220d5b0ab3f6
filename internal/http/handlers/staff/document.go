package staff

import (
	"net/http"
	"strconv"

	handlershared "github.com/lacak-next/internal/http/handlers/shared"
	"github.com/lacak-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ShipmentNote surat jalan teks tetap (monospace), siap cetak
func (h *Handler) ShipmentNote(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	note, err := h.ShipmentService.Note(session, c.Param("order_id"))
	if err != nil {
		respondShipmentError(c, err, "pembuatan surat jalan gagal")
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(note))
}

// ShipmentQR gambar PNG kode QR tautan lacak kiriman
func (h *Handler) ShipmentQR(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	png, err := h.ShipmentService.QR(session, c.Param("order_id"))
	if err != nil {
		respondShipmentError(c, err, "pembuatan kode QR gagal")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ShipmentStatusLogs riwayat perubahan status satu kiriman
func (h *Handler) ShipmentStatusLogs(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	logs, total, err := h.ShipmentService.StatusLogs(session, c.Param("order_id"), page, pageSize)
	if err != nil {
		respondShipmentError(c, err, "pengambilan riwayat status gagal")
		return
	}
	response.SuccessWithPage(c, logs, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}
