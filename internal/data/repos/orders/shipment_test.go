package orders

import (
	"context"
	"testing"

	"github.com/yungbote/brewery-backend/internal/data/repos/testutil"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

func TestShipmentRepoScopesByOrder(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewShipmentRepo(db, testutil.Logger(t))

	p := testutil.SeedProduct(t, ctx, tx, "A", "IPA", "UPC-A")
	orderA := testutil.SeedOrder(t, ctx, tx, p.ID)
	orderB := testutil.SeedOrder(t, ctx, tx, p.ID)

	shipA := testutil.SeedShipment(t, ctx, tx, orderA.ID, "TN-A")
	testutil.SeedShipment(t, ctx, tx, orderA.ID, "TN-A2")
	shipB := testutil.SeedShipment(t, ctx, tx, orderB.ID, "TN-B")

	got, err := repo.GetByOrderAndID(dbc, orderA.ID, shipA.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByOrderAndID: got=%v err=%v", got, err)
	}
	if got.TrackingNumber == nil || *got.TrackingNumber != "TN-A" {
		t.Fatalf("GetByOrderAndID: unexpected tracking number: %v", got.TrackingNumber)
	}

	cross, err := repo.GetByOrderAndID(dbc, orderA.ID, shipB.ID)
	if err != nil {
		t.Fatalf("GetByOrderAndID (cross order): %v", err)
	}
	if cross != nil {
		t.Fatalf("GetByOrderAndID (cross order): expected nil, got %+v", cross)
	}

	rows, total, err := repo.ListByOrder(dbc, orderA.ID, paging.Request{Size: 10})
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("ListByOrder: total=%d len=%d", total, len(rows))
	}

	removed, err := repo.DeleteByOrderAndID(dbc, orderA.ID, shipB.ID)
	if err != nil || removed {
		t.Fatalf("DeleteByOrderAndID (cross order): removed=%v err=%v", removed, err)
	}
	removed, err = repo.DeleteByOrderAndID(dbc, orderB.ID, shipB.ID)
	if err != nil || !removed {
		t.Fatalf("DeleteByOrderAndID: removed=%v err=%v", removed, err)
	}
}
