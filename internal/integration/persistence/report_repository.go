package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// DataRange returns the earliest and latest stored expense dates for a user.
// Both bounds are nil when the user has no expenses. Recurrence end dates are
// not considered here; the series tail is resolved after expansion.
func (r *reportRepository) DataRange(ctx context.Context, userID uuid.UUID) (*time.Time, *time.Time, error) {
	var bounds struct {
		Earliest sql.NullTime
		Latest   sql.NullTime
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("MIN(date) AS earliest, MAX(date) AS latest").
		Where("user_id = ?", userID).
		Scan(&bounds)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if !bounds.Earliest.Valid || !bounds.Latest.Valid {
		return nil, nil, nil
	}
	return &bounds.Earliest.Time, &bounds.Latest.Time, nil
}
