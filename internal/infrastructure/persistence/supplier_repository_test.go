package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMockSupplierRepository(t *testing.T) (*GormSupplierRepository, sqlmock.Sqlmock, *testutil.MockDB) {
	t.Helper()
	db := testutil.NewMockDB(t)
	return NewGormSupplierRepository(db.DB), db.Mock, db
}

func TestGormSupplierRepository_FindByIDForUser(t *testing.T) {
	t.Run("scopes lookup by owner and id", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		userID, supplierID := uuid.New(), uuid.New()

		rows := sqlmock.NewRows([]string{"id", "user_id", "version", "name", "category", "rating", "status", "total_spent"}).
			AddRow(supplierID, userID, 1, "Madeireira Paraná", "Madeira", 4.8, "ativo", "2450000")

		mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE user_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(userID, supplierID, 1).
			WillReturnRows(rows)

		supplier, err := repo.FindByIDForUser(context.Background(), userID, supplierID)

		require.NoError(t, err)
		assert.Equal(t, supplierID, supplier.ID)
		assert.Equal(t, userID, supplier.UserID)
		assert.Equal(t, "Madeireira Paraná", supplier.Name)
		assert.Equal(t, "2450000", supplier.TotalSpent.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		userID, supplierID := uuid.New(), uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE user_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(userID, supplierID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		supplier, err := repo.FindByIDForUser(context.Background(), userID, supplierID)

		assert.Nil(t, supplier)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierRepository_FindAllForUser(t *testing.T) {
	t.Run("applies filters in key order then sorts and paginates", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE user_id = \$1 AND category = \$2 AND rating >= \$3 AND status = \$4 ORDER BY rating ASC LIMIT \$5 OFFSET \$6`).
			WithArgs(userID, "Madeira", 4.5, "ativo", 10, 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}))

		filter := shared.Filter{
			Page:     2,
			PageSize: 10,
			OrderBy:  "rating",
			OrderDir: "asc",
			Filters: map[string]interface{}{
				"status":     "ativo",
				"min_rating": 4.5,
				"category":   "Madeira",
			},
		}
		suppliers, err := repo.FindAllForUser(context.Background(), userID, filter)

		require.NoError(t, err)
		assert.Empty(t, suppliers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unknown sort field", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE user_id = \$1 ORDER BY created_at DESC`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindAllForUser(context.Background(), userID, shared.Filter{OrderBy: "name; DROP TABLE suppliers"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierRepository_DeleteForUser(t *testing.T) {
	t.Run("returns not found when nothing matched", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		userID, supplierID := uuid.New(), uuid.New()

		mock.ExpectExec(`DELETE FROM "suppliers" WHERE user_id = \$1 AND id = \$2`).
			WithArgs(userID, supplierID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteForUser(context.Background(), userID, supplierID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes owned row", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		userID, supplierID := uuid.New(), uuid.New()

		mock.ExpectExec(`DELETE FROM "suppliers" WHERE user_id = \$1 AND id = \$2`).
			WithArgs(userID, supplierID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteForUser(context.Background(), userID, supplierID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
