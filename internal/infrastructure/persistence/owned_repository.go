package persistence

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedModel is a persistence model of a user-owned aggregate that maps back to domain type T.
type ownedModel[T any] interface {
	ToDomain() *T
}

// filterFunc narrows query by one entry of shared.Filter.Filters.
// Unknown keys must be ignored.
type filterFunc func(query *gorm.DB, key string, value interface{}) *gorm.DB

// ownedTable holds the per-table queries shared by every user-owned repository.
// Every statement it issues carries a user_id predicate.
type ownedTable[M any, T any, PM interface {
	*M
	ownedModel[T]
}] struct {
	db            *gorm.DB
	sortFields    sortFields
	searchColumns []string
	filter        filterFunc
}

func (t ownedTable[M, T, PM]) findByID(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	var model M
	if err := t.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return PM(&model).ToDomain(), nil
}

func (t ownedTable[M, T, PM]) findAll(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]T, error) {
	var rows []M
	query := t.applyFilter(t.db.WithContext(ctx).Model(new(M)).Where("user_id = ?", userID), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]T, len(rows))
	for i := range rows {
		items[i] = *PM(&rows[i]).ToDomain()
	}
	return items, nil
}

func (t ownedTable[M, T, PM]) count(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := t.applyFilterWithoutPagination(t.db.WithContext(ctx).Model(new(M)).Where("user_id = ?", userID), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (t ownedTable[M, T, PM]) save(ctx context.Context, model *M) error {
	return t.db.WithContext(ctx).Save(model).Error
}

func (t ownedTable[M, T, PM]) delete(ctx context.Context, userID, id uuid.UUID) error {
	result := t.db.WithContext(ctx).Delete(new(M), "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options including pagination and ordering
func (t ownedTable[M, T, PM]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = t.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	return query.Order(t.sortFields.orderClause(filter.OrderBy, filter.OrderDir))
}

// applyFilterWithoutPagination applies search and key filters only
func (t ownedTable[M, T, PM]) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" && len(t.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		clauses := make([]string, len(t.searchColumns))
		args := make([]interface{}, len(t.searchColumns))
		for i, col := range t.searchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	if t.filter != nil {
		for _, key := range slices.Sorted(maps.Keys(filter.Filters)) {
			query = t.filter(query, key, filter.Filters[key])
		}
	}

	return query
}

// equalsFilter returns a filterFunc that maps each allowed key to an equality predicate on the column of the same name.
// Empty string values are skipped.
func equalsFilter(keys ...string) filterFunc {
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[k] = true
	}
	return func(query *gorm.DB, key string, value interface{}) *gorm.DB {
		if !allowed[key] {
			return query
		}
		if s, ok := value.(string); ok && s == "" {
			return query
		}
		return query.Where(key+" = ?", value)
	}
}
