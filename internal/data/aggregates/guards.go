package aggregates

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
)

// CASGuard performs optimistic-lock updates on versioned rows (products,
// customers, shipments). A row is only written when its stored version still
// equals the version the caller read.
type CASGuard struct {
	db *gorm.DB
}

func NewCASGuard(db *gorm.DB) CASGuard {
	return CASGuard{db: db}
}

// UpdateByVersion writes updates to table where id and expectedVersion match,
// incrementing version and stamping updated_at. Nil values in updates clear
// the column. It reports false when another writer got there first.
func (g CASGuard) UpdateByVersion(dbc dbctx.Context, table string, id uuid.UUID, expectedVersion int, updates map[string]any) (bool, error) {
	table = strings.TrimSpace(table)
	switch {
	case table == "" || id == uuid.Nil:
		return false, ValidationError("versioned update needs a table and id")
	case expectedVersion < 0:
		return false, ValidationError("expected version must be >= 0")
	}

	conn := dbc.Tx
	if conn == nil {
		conn = g.db
	}
	if conn == nil {
		return false, ValidationError("versioned update has no database handle")
	}

	cols := make(map[string]any, len(updates)+2)
	for k, v := range updates {
		if k == "version" || k == "id" {
			continue
		}
		cols[k] = v
	}
	cols["version"] = gorm.Expr("version + 1")
	cols["updated_at"] = time.Now().UTC()

	res := conn.WithContext(dbc.Ctx).
		Table(table).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// RequireCASSuccess turns a lost compare-and-set into a conflict.
func RequireCASSuccess(ok bool, message string) error {
	if ok {
		return nil
	}
	return ConflictError(message)
}

// RequireVersionMatch rejects a client-supplied version that is not the
// stored one.
func RequireVersionMatch(current, expected int) error {
	if expected < 0 {
		return ValidationError("expected version must be >= 0")
	}
	if current != expected {
		return ConflictError(fmt.Sprintf("version mismatch: expected %d, stored %d", expected, current))
	}
	return nil
}
