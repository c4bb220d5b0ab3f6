package repository

import (
	"testing"
	"time"

	"github.com/lacak-next/internal/constants"
	"github.com/lacak-next/internal/models"
)

func TestStatusLogAppendAndList(t *testing.T) {
	_, db := setupShipmentRepositoryTest(t)
	repo := NewStatusLogRepository(db)

	logs := []models.StatusLog{
		{
			OrderID:     "240101001",
			ActorRole:   constants.RoleSupervisor,
			ActorBranch: "Jakarta",
			FromStatus:  constants.ShipmentStatusAwaitingConfirm,
			ToStatus:    constants.ShipmentStatusWarehouse,
			ReportedAt:  time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			OrderID:     "240101001",
			ActorRole:   constants.RoleAdmin,
			ActorBranch: "",
			FromStatus:  constants.ShipmentStatusWarehouse,
			ToStatus:    constants.ShipmentStatusInTransit,
			ReportedAt:  time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC),
		},
	}
	for i := range logs {
		if err := repo.Append(&logs[i]); err != nil {
			t.Fatalf("append log failed: %v", err)
		}
	}

	got, total, err := repo.ListByOrderID(StatusLogListFilter{OrderID: "240101001"})
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("want 2 logs got total=%d len=%d", total, len(got))
	}
	// Terbaru lebih dulu.
	if got[0].ToStatus != constants.ShipmentStatusInTransit {
		t.Fatalf("unexpected first log status %s", got[0].ToStatus)
	}

	_, otherTotal, err := repo.ListByOrderID(StatusLogListFilter{OrderID: "240101999"})
	if err != nil {
		t.Fatalf("list other order failed: %v", err)
	}
	if otherTotal != 0 {
		t.Fatalf("want 0 logs for other order, got %d", otherTotal)
	}
}
