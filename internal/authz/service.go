package authz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	casbinTableName = "casbin_rule"
	rolePrefix      = "role:"
)

// ErrForbidden akses ditolak sebelum menyentuh repository
var ErrForbidden = errors.New("akses ditolak")

const defaultRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// Objek sumber daya yang dilindungi
const (
	ObjectShipments = "/shipments"
	ObjectPurge     = "/shipments/purge"
	ObjectDashboard = "/dashboard"
	ObjectDocuments = "/documents"
)

// Aksi yang dikenal
const (
	ActionCreate = "CREATE"
	ActionRead   = "READ"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionExport = "EXPORT"
	ActionPurge  = "PURGE"
)

// Session identitas terotentikasi yang dibawa setiap permintaan staf.
// Peran dan cabang berasal dari klaim JWT, bukan dari input handler.
type Session struct {
	Role   string `json:"role"`
	Branch string `json:"branch"`
}

// IsAdmin peran admin berlaku lintas cabang
func (s Session) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(s.Role), "admin")
}

// Policy strategi akses
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

// Service layanan otorisasi Casbin
// Membungkus pemuatan strategi dan penentuan akses dalam satu tempat.
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService membuat layanan otorisasi
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}

	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}

	m, err := model.NewModelFromString(defaultRBACModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}

	return &Service{enforcer: enforcer}, nil
}

// Enforcer mengembalikan enforcer di baliknya
func (s *Service) Enforcer() *casbin.SyncedEnforcer {
	if s == nil {
		return nil
	}
	return s.enforcer
}

// Enforce menjalankan penentuan akses mentah
func (s *Service) Enforce(sub, obj, act string) (bool, error) {
	if s == nil || s.enforcer == nil {
		return false, fmt.Errorf("authz service unavailable")
	}
	return s.enforcer.Enforce(strings.TrimSpace(sub), NormalizeObject(obj), NormalizeAction(act))
}

// Authorize memutuskan apakah sesi boleh melakukan aksi pada objek untuk
// cabang target. Ditolak di sini berarti repository tidak pernah disentuh.
// Aturan cabang berlapis di atas matriks peran: selain admin, sesi hanya
// boleh menyentuh cabangnya sendiri.
func (s *Service) Authorize(session Session, object, action, targetBranch string) error {
	role := strings.ToLower(strings.TrimSpace(session.Role))
	if role == "" || role == "guest" {
		return ErrForbidden
	}

	if !session.IsAdmin() {
		target := strings.TrimSpace(targetBranch)
		if target != "" && !strings.EqualFold(target, strings.TrimSpace(session.Branch)) {
			return ErrForbidden
		}
	}

	allowed, err := s.Enforce(SubjectForRole(role), object, action)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrForbidden
	}
	return nil
}

// ReloadPolicy memuat ulang strategi
func (s *Service) ReloadPolicy() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	return s.enforcer.LoadPolicy()
}

// RolePolicies strategi efektif satu peran
func (s *Service) RolePolicies(role string) ([]Policy, error) {
	if s == nil || s.enforcer == nil {
		return nil, fmt.Errorf("authz service unavailable")
	}
	rules, err := s.enforcer.GetFilteredPolicy(0, SubjectForRole(role))
	if err != nil {
		return nil, fmt.Errorf("get role policies failed: %w", err)
	}
	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		policies = append(policies, Policy{
			Subject: strings.TrimSpace(rule[0]),
			Object:  NormalizeObject(rule[1]),
			Action:  NormalizeAction(rule[2]),
		})
	}
	return policies, nil
}

// SubjectForRole subjek casbin untuk sebuah peran
func SubjectForRole(role string) string {
	normalized := strings.ToLower(strings.TrimSpace(role))
	if strings.HasPrefix(normalized, rolePrefix) {
		return normalized
	}
	return rolePrefix + normalized
}

// NormalizeObject menyeragamkan path sumber daya
func NormalizeObject(object string) string {
	normalized := strings.TrimSpace(object)
	if normalized == "" {
		return "/"
	}
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	return normalized
}

// NormalizeAction menyeragamkan aksi
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
