package staff

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	handlershared "github.com/lacak-next/internal/http/handlers/shared"
	"github.com/lacak-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ExportShipments unduhan CSV seluruh kiriman sesuai filter
func (h *Handler) ExportShipments(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	csvBytes, err := h.ExportService.CSV(session, repository.ShipmentListFilter{
		Branch: strings.TrimSpace(c.Query("branch")),
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		respondShipmentError(c, err, "ekspor gagal")
		return
	}

	filename := fmt.Sprintf("kiriman-%s.csv", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csvBytes)
}
