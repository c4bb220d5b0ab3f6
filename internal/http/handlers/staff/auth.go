package staff

import (
	"errors"
	"time"

	"github.com/lacak-next/internal/http/response"
	"github.com/lacak-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest isian login staf
type LoginRequest struct {
	Gatekeeper string `json:"gatekeeper"`
	Role       string `json:"role" binding:"required"`
	Branch     string `json:"branch"`
	Secret     string `json:"secret"`
}

// LoginResponse hasil login staf
type LoginResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Branch    string    `json:"branch"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login autentikasi staf. Semua kegagalan kredensial dikembalikan 401
// dengan pesan seragam supaya tidak membocorkan bagian mana yang salah.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "permintaan tidak valid", err)
		return
	}

	session, token, expiresAt, err := h.AuthService.Login(service.LoginInput{
		Gatekeeper: req.Gatekeeper,
		Role:       req.Role,
		Branch:     req.Branch,
		Secret:     req.Secret,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGatekeeperDenied),
			errors.Is(err, service.ErrInvalidCredentials),
			errors.Is(err, service.ErrUnknownRole),
			errors.Is(err, service.ErrUnknownBranch):
			requestLog(c).Warnw("staff_login_rejected", "role", req.Role, "branch", req.Branch, "ip", c.ClientIP())
			respondError(c, response.CodeUnauthorized, "kredensial salah", nil)
		default:
			respondError(c, response.CodeInternal, "login gagal", err)
		}
		return
	}

	requestLog(c).Infow("staff_login_success", "role", session.Role, "branch", session.Branch, "ip", c.ClientIP())
	response.Success(c, LoginResponse{
		Token:     token,
		Role:      session.Role,
		Branch:    session.Branch,
		ExpiresAt: expiresAt,
	})
}
