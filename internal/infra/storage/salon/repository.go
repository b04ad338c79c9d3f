package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/pkg/dbmetrics"
	"github.com/jazyl-tech/JZL-BookingService/pkg/psqlbuilder"
)

var salonColumns = []string{
	"id",
	"category_id",
	"name",
	"description",
	"city",
	"rating",
	"total_reviews",
	"auction_bid",
	"advertising_budget",
	"is_active",
	"is_visible_in_catalog",
	"created_at",
	"updated_at",
}

// Repository репозиторий витринной проекции салонов и рекламного бюджета
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CatalogSalon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("catalog_salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	salon, err := scanSalon(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	return salon, nil
}

// ListEligible получает салоны, проходящие фильтр каталога
// Категория обязательна; город - точное совпадение; search - подстрочный поиск
// без учета регистра по названию и описанию. Порядок детерминированный (id ASC) -
// финальное ранжирование выполняет движок выдачи
func (r *Repository) ListEligible(ctx context.Context, filter domain.CatalogFilter) ([]*domain.CatalogSalon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(salonColumns...).
		From("catalog_salons").
		Where(squirrel.Eq{
			"category_id":           filter.CategoryID,
			"is_active":             true,
			"is_visible_in_catalog": true,
		}).
		OrderBy("id ASC")

	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}

	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligible - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligible - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	salons := make([]*domain.CatalogSalon, 0)
	for rows.Next() {
		salon, err := scanSalon(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEligible - scan row: %v", ErrScanRow, err)
		}
		salons = append(salons, salon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEligible - rows error: %v", ErrScanRow, err)
	}

	return salons, nil
}

// ChargeBudget атомарно списывает стоимость показа или клика с рекламного бюджета
// Одиночный UPDATE с условием advertising_budget >= cost: бюджет не может уйти в минус
// даже при конкурентных списаниях. Нулевое число затронутых строк означает,
// что средств не хватило - вызывающий код понижает салон до органики
func (r *Repository) ChargeBudget(ctx context.Context, salonID int64, cost float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("catalog_salons").
		Set("advertising_budget", squirrel.Expr("advertising_budget - ?", cost)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": salonID}).
		Where(squirrel.GtOrEq{"advertising_budget": cost}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ChargeBudget - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ChargeBudget - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ChargeBudget - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInsufficientBudget
	}

	return nil
}

// DemoteToOrganic сбрасывает ставку аукциона - салон выпадает из продвигаемой выдачи
// Вызывается при исчерпании бюджета; уже вычисленные страницы не пересчитываются
func (r *Repository) DemoteToOrganic(ctx context.Context, salonID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("catalog_salons").
		Set("auction_bid", 0).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": salonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DemoteToOrganic - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DemoteToOrganic - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DemoteToOrganic - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSalonNotFound
	}

	return nil
}

// TopUpBudget атомарно пополняет рекламный бюджет и возвращает новый остаток
func (r *Repository) TopUpBudget(ctx context.Context, salonID int64, amount float64) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("catalog_salons").
		Set("advertising_budget", squirrel.Expr("advertising_budget + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": salonID}).
		Suffix("RETURNING advertising_budget").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: TopUpBudget - build update query: %v", ErrBuildQuery, err)
	}

	var balance float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrSalonNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: TopUpBudget - execute update: %v", ErrExecQuery, err)
	}

	return balance, nil
}

// UpdateBid устанавливает ставку аукциона
func (r *Repository) UpdateBid(ctx context.Context, salonID int64, bid float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("catalog_salons").
		Set("auction_bid", bid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": salonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateBid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateBid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSalonNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSalon(row rowScanner) (*domain.CatalogSalon, error) {
	var salon domain.CatalogSalon
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&salon.ID,
		&salon.CategoryID,
		&salon.Name,
		&salon.Description,
		&salon.City,
		&salon.Rating,
		&salon.TotalReviews,
		&salon.AuctionBid,
		&salon.AdvertisingBudget,
		&salon.IsActive,
		&salon.IsVisibleInCatalog,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return &salon, nil
}
