package service

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/lacak-next/internal/authz"
	"github.com/lacak-next/internal/config"
	"github.com/lacak-next/internal/constants"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService autentikasi staf dengan kredensial statis dari konfigurasi.
// Tidak ada registrasi, refresh token, maupun rotasi; token kedaluwarsa
// berarti login ulang.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService membuat layanan autentikasi
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// StaffClaims klaim JWT staf; peran dan cabang ikut di dalam token
type StaffClaims struct {
	Role   string `json:"role"`
	Branch string `json:"branch"`
	jwt.RegisteredClaims
}

// LoginInput isian login staf
type LoginInput struct {
	Gatekeeper string
	Role       string
	Branch     string
	Secret     string
}

// Login memeriksa gerbang aplikasi dulu, lalu kredensial peran.
// Gerbang yang salah tidak pernah sampai ke pencocokan kredensial.
func (s *AuthService) Login(input LoginInput) (authz.Session, string, time.Time, error) {
	if !matchSecret(s.cfg.Auth.GatekeeperSecret, input.Gatekeeper) {
		return authz.Session{}, "", time.Time{}, ErrGatekeeperDenied
	}

	role := strings.ToLower(strings.TrimSpace(input.Role))
	session := authz.Session{Role: role}

	switch role {
	case constants.RoleAdmin:
		if !matchSecret(s.cfg.Auth.AdminSecret, input.Secret) {
			return authz.Session{}, "", time.Time{}, ErrInvalidCredentials
		}
	case constants.RoleSales, constants.RoleSupervisor:
		branch, ok := s.cfg.Auth.FindBranch(strings.TrimSpace(input.Branch))
		if !ok {
			return authz.Session{}, "", time.Time{}, ErrUnknownBranch
		}
		stored := branch.SalesSecret
		if role == constants.RoleSupervisor {
			stored = branch.SupervisorSecret
		}
		if !matchSecret(stored, input.Secret) {
			return authz.Session{}, "", time.Time{}, ErrInvalidCredentials
		}
		session.Branch = branch.Name
	default:
		return authz.Session{}, "", time.Time{}, ErrUnknownRole
	}

	token, expiresAt, err := s.GenerateJWT(session)
	if err != nil {
		return authz.Session{}, "", time.Time{}, err
	}
	return session, token, expiresAt, nil
}

// GenerateJWT menerbitkan token untuk satu sesi staf
func (s *AuthService) GenerateJWT(session authz.Session) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 12
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)

	claims := StaffClaims{
		Role:   session.Role,
		Branch: session.Branch,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT membaca dan memvalidasi token staf
func (s *AuthService) ParseJWT(tokenString string) (*StaffClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*StaffClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("token tidak valid")
}

// matchSecret mencocokkan secret tersimpan dengan input. Secret berawalan
// $2 diperlakukan sebagai hash bcrypt, selain itu dibandingkan waktu-konstan.
// Secret kosong selalu gagal.
func matchSecret(stored, supplied string) bool {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
