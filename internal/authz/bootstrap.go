package authz

import "fmt"

// RoleSeed definisi peran bawaan
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds matriks peran tetap. Guest tidak punya strategi sama
// sekali sehingga semua aksi staf tertolak secara default. Pembuatan order
// hanya hak sales; ekspor massal hanya supervisor dan admin.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "sales",
			Policies: []Policy{
				{Object: ObjectShipments, Action: ActionCreate},
				{Object: ObjectShipments, Action: ActionRead},
				{Object: ObjectDocuments, Action: ActionRead},
				{Object: ObjectDashboard, Action: ActionRead},
			},
		},
		{
			Role: "supervisor",
			Policies: []Policy{
				{Object: ObjectShipments, Action: ActionRead},
				{Object: ObjectShipments, Action: ActionUpdate},
				{Object: ObjectShipments, Action: ActionDelete},
				{Object: ObjectShipments, Action: ActionExport},
				{Object: ObjectDocuments, Action: ActionRead},
				{Object: ObjectDashboard, Action: ActionRead},
			},
		},
		{
			Role: "admin",
			Policies: []Policy{
				{Object: ObjectShipments, Action: ActionRead},
				{Object: ObjectShipments, Action: ActionUpdate},
				{Object: ObjectShipments, Action: ActionDelete},
				{Object: ObjectShipments, Action: ActionExport},
				{Object: ObjectPurge, Action: ActionPurge},
				{Object: ObjectDocuments, Action: "*"},
				{Object: ObjectDashboard, Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles menanam matriks peran bawaan ke penyimpanan strategi
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		subject := SubjectForRole(seed.Role)
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(subject, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
