package staff

import (
	"errors"

	"github.com/lacak-next/internal/authz"
	handlershared "github.com/lacak-next/internal/http/handlers/shared"
	"github.com/lacak-next/internal/http/response"
	"github.com/lacak-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// mappedHandlerError pemetaan error layanan ke respons API.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

var shipmentErrorRules = []mappedHandlerError{
	{target: service.ErrDuplicateOrderID, code: response.CodeConflict, msg: "nomor order sudah terdaftar"},
	{target: service.ErrShipmentNotFound, code: response.CodeNotFound, msg: "kiriman tidak ditemukan"},
	{target: authz.ErrForbidden, code: response.CodeForbidden, msg: "akses ditolak"},
}

// respondShipmentError memetakan error layanan kiriman. Error validasi
// selalu 400 dengan pesan aslinya.
func respondShipmentError(c *gin.Context, err error, fallbackMsg string) {
	for _, rule := range shipmentErrorRules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	if service.IsValidationError(err) {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}
	respondError(c, response.CodeInternal, fallbackMsg, err)
}
