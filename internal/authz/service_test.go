package authz

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func TestAuthorizeMatrix(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	cases := []struct {
		name    string
		session Session
		object  string
		action  string
		branch  string
		allow   bool
	}{
		{"guest cannot read shipments", Session{Role: "guest"}, ObjectShipments, ActionRead, "", false},
		{"empty role denied", Session{}, ObjectShipments, ActionRead, "", false},
		{"sales creates own branch", Session{Role: "sales", Branch: "Jakarta"}, ObjectShipments, ActionCreate, "Jakarta", true},
		{"sales cannot create other branch", Session{Role: "sales", Branch: "Jakarta"}, ObjectShipments, ActionCreate, "Bandung", false},
		{"sales cannot update", Session{Role: "sales", Branch: "Jakarta"}, ObjectShipments, ActionUpdate, "Jakarta", false},
		{"sales cannot delete", Session{Role: "sales", Branch: "Jakarta"}, ObjectShipments, ActionDelete, "Jakarta", false},
		{"sales cannot purge", Session{Role: "sales", Branch: "Jakarta"}, ObjectPurge, ActionPurge, "", false},
		{"sales cannot export own branch", Session{Role: "sales", Branch: "Jakarta"}, ObjectShipments, ActionExport, "Jakarta", false},
		{"sales reads documents", Session{Role: "sales", Branch: "Jakarta"}, ObjectDocuments, ActionRead, "Jakarta", true},
		{"supervisor updates own branch", Session{Role: "supervisor", Branch: "Jakarta"}, ObjectShipments, ActionUpdate, "Jakarta", true},
		{"supervisor cannot update other branch", Session{Role: "supervisor", Branch: "Jakarta"}, ObjectShipments, ActionUpdate, "Bandung", false},
		{"supervisor deletes own branch", Session{Role: "supervisor", Branch: "Jakarta"}, ObjectShipments, ActionDelete, "Jakarta", true},
		{"supervisor cannot create", Session{Role: "supervisor", Branch: "Jakarta"}, ObjectShipments, ActionCreate, "Jakarta", false},
		{"supervisor cannot purge", Session{Role: "supervisor", Branch: "Jakarta"}, ObjectPurge, ActionPurge, "", false},
		{"supervisor exports own branch", Session{Role: "supervisor", Branch: "Jakarta"}, ObjectShipments, ActionExport, "Jakarta", true},
		{"admin cannot create", Session{Role: "admin"}, ObjectShipments, ActionCreate, "Jakarta", false},
		{"admin updates any branch", Session{Role: "admin"}, ObjectShipments, ActionUpdate, "Bandung", true},
		{"admin exports any branch", Session{Role: "admin"}, ObjectShipments, ActionExport, "Bandung", true},
		{"admin deletes any branch", Session{Role: "admin"}, ObjectShipments, ActionDelete, "Jakarta", true},
		{"admin purges", Session{Role: "admin"}, ObjectPurge, ActionPurge, "", true},
		{"admin reads dashboard", Session{Role: "admin"}, ObjectDashboard, ActionRead, "", true},
		{"sales reads dashboard own branch", Session{Role: "sales", Branch: "Jakarta"}, ObjectDashboard, ActionRead, "Jakarta", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Authorize(tc.session, tc.object, tc.action, tc.branch)
			if tc.allow && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.allow {
				if err == nil {
					t.Fatalf("expected deny")
				}
				if !errors.Is(err, ErrForbidden) {
					t.Fatalf("expected ErrForbidden, got %v", err)
				}
			}
		})
	}
}

func TestAuthorizeBranchComparisonIgnoresCase(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	err := svc.Authorize(Session{Role: "supervisor", Branch: "Jakarta"}, ObjectShipments, ActionUpdate, "jakarta")
	if err != nil {
		t.Fatalf("expected allow for same branch with different case, got %v", err)
	}
}

func TestBootstrapBuiltinRolesIdempotent(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	policies, err := svc.RolePolicies("sales")
	if err != nil {
		t.Fatalf("get sales policies failed: %v", err)
	}
	if len(policies) != len(BuiltinRoleSeeds()[0].Policies) {
		t.Fatalf("sales policies duplicated: got %d", len(policies))
	}
}
