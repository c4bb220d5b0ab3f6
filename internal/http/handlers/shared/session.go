package shared

import (
	"github.com/lacak-next/internal/authz"
	"github.com/lacak-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SessionContextKey kunci konteks sesi staf hasil middleware JWT.
const SessionContextKey = "staff_session"

// GetSession membaca sesi staf dari konteks dan menangani respons 401
// secara seragam bila tidak ada.
func GetSession(c *gin.Context) (authz.Session, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "sesi tidak ditemukan", nil)
		return authz.Session{}, false
	}
	session, ok := value.(authz.Session)
	if !ok {
		RespondError(c, response.CodeInternal, "sesi tidak valid", nil)
		return authz.Session{}, false
	}
	return session, true
}
