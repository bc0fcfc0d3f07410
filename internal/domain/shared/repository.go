package shared

import (
	"context"

	"github.com/google/uuid"
)

// OwnedRepository is a repository whose every read and write is scoped to one user.
// Lookups of rows owned by another user behave exactly like lookups of missing rows.
type OwnedRepository[T any] interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*T, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter Filter) ([]T, error)
	CountForUser(ctx context.Context, userID uuid.UUID, filter Filter) (int64, error)
	Save(ctx context.Context, entity *T) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// Upper bounds for client supplied pagination. Pages past MaxPage would push
// the row offset beyond what a list endpoint serves.
const (
	MaxPage     = 100000
	MaxPageSize = 100
)

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}

// NewFilter builds a filter from client list parameters, falling back to the defaults
func NewFilter(page, pageSize int, orderBy, orderDir string) Filter {
	f := DefaultFilter()
	if page > 0 {
		f.Page = min(page, MaxPage)
	}
	if pageSize > 0 {
		f.PageSize = min(pageSize, MaxPageSize)
	}
	if orderBy != "" {
		f.OrderBy = orderBy
	}
	if orderDir != "" {
		f.OrderDir = orderDir
	}
	return f
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
