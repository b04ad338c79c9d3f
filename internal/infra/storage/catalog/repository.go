package catalog

import (
	"context"
	"fmt"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/pkg/dbmetrics"
	"github.com/jazyl-tech/JZL-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий журнала показов и кликов каталога
// Обе таблицы append-only: записи создаются и никогда не изменяются,
// поэтому конкурентные вставки безопасны без дополнительной синхронизации
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateImpressions пакетно записывает показы одной страницы выдачи
func (r *Repository) CreateImpressions(ctx context.Context, impressions []*domain.CatalogImpression) error {
	if len(impressions) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("catalog_impressions").
		Columns(
			"salon_id",
			"impression_date",
			"impression_hour",
			"position",
			"is_promoted",
			"cost",
		)

	for _, imp := range impressions {
		insertBuilder = insertBuilder.Values(
			imp.SalonID,
			imp.ImpressionDate,
			imp.ImpressionHour,
			imp.Position,
			imp.IsPromoted,
			imp.Cost,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateImpressions - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateImpressions - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateClick записывает клик по салону в каталоге
func (r *Repository) CreateClick(ctx context.Context, click *domain.CatalogClick) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("catalog_clicks").
		Columns(
			"salon_id",
			"clicked_at",
			"is_promoted",
			"cost",
			"session_id",
		).
		Values(
			click.SalonID,
			click.ClickedAt,
			click.IsPromoted,
			click.Cost,
			click.SessionID,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateClick - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateClick - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
