package staff

import (
	handlershared "github.com/lacak-next/internal/http/handlers/shared"
	"github.com/lacak-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Dashboard ringkasan operasional cabang efektif sesi
func (h *Handler) Dashboard(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	summary, err := h.DashboardService.Summary(c.Request.Context(), session, c.Query("branch"))
	if err != nil {
		respondShipmentError(c, err, "pengambilan ringkasan gagal")
		return
	}
	response.Success(c, summary)
}
