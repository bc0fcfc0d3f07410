// Package testutil holds shared test helpers: a sqlmock-backed gorm handle,
// gin test contexts, table-driven handler cases and testify repository mocks.
package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockDB is a gorm handle speaking the postgres dialect to sqlmock
type MockDB struct {
	DB    *gorm.DB
	Mock  sqlmock.Sqlmock
	SqlDB *sql.DB
}

// NewMockDB opens a gorm handle on sqlmock. Unique violations are not
// translated, so tests assert on the raw driver error they configure.
func NewMockDB(t *testing.T) *MockDB {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create sqlmock")

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err, "Failed to open GORM connection")

	return &MockDB{DB: gormDB, Mock: mock, SqlDB: sqlDB}
}

// Close closes the underlying connection
func (m *MockDB) Close() error {
	return m.SqlDB.Close()
}

// ExpectationsWereMet fails the test on any unmet query expectation
func (m *MockDB) ExpectationsWereMet(t *testing.T) {
	t.Helper()
	require.NoError(t, m.Mock.ExpectationsWereMet(), "Unmet database expectations")
}

// TestContext pairs a gin context with its response recorder
type TestContext struct {
	Context  *gin.Context
	Recorder *httptest.ResponseRecorder
	Engine   *gin.Engine
}

// NewTestContext returns a context holding an empty GET / request
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return &TestContext{Context: c, Recorder: w, Engine: engine}
}

// SetRequestID stores the request id the RequestID middleware would have set
func (tc *TestContext) SetRequestID(id string) {
	tc.Context.Set(logger.GinRequestIDKey, id)
}

// SetUserID authenticates the context as the given user, as the JWT middleware would
func (tc *TestContext) SetUserID(id uuid.UUID) {
	tc.Context.Set(logger.GinUserIDKey, id.String())
}

// SetHeader sets a request header
func (tc *TestContext) SetHeader(key, value string) {
	tc.Context.Request.Header.Set(key, value)
}

// ResponseBody returns the recorded body
func (tc *TestContext) ResponseBody() []byte {
	return tc.Recorder.Body.Bytes()
}

// ResponseCode returns the recorded status
func (tc *TestContext) ResponseCode() int {
	return tc.Recorder.Code
}

var testNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// NewTestUUID derives a stable UUID from seed
func NewTestUUID(seed string) uuid.UUID {
	return uuid.NewSHA1(testNamespace, []byte(seed))
}

// TestUserID is the default authenticated caller
func TestUserID() uuid.UUID {
	return NewTestUUID("test-user")
}

// OtherUserID is a second caller for isolation tests
func OtherUserID() uuid.UUID {
	return NewTestUUID("other-user")
}
