package health

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"catalog-sync/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, db *gorm.DB, expected map[string][]string) *fiber.App {
	app := fiber.New()
	feature := NewFeature(db, expected, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, nil, nil)
	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestHandleHealth(t *testing.T) {
	t.Run("Connected", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		defer database.Close(db)

		resp, err := setupTestApp(t, db, nil).Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, map[string]string{"status": "ok", "db": "connected"}, body)
	})

	t.Run("Probe Failure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectExec("SELECT 1").WillReturnError(errors.New("connection refused"))

		resp, err := setupTestApp(t, db, nil).Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "error: connection refused", body["db"])
	})

	t.Run("No Database", func(t *testing.T) {
		resp, err := setupTestApp(t, nil, nil).Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["db"], "error: ")
	})
}

func TestHandleSchema(t *testing.T) {
	t.Run("Report", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		defer database.Close(db)
		require.NoError(t, db.Exec("CREATE TABLE records (id INTEGER PRIMARY KEY)").Error)

		app := setupTestApp(t, db, map[string][]string{"records": {"id", "name"}})
		resp, err := app.Test(httptest.NewRequest("GET", "/health/schema", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Matched bool `json:"matched"`
			Tables  map[string]struct {
				MissingColumns []string `json:"missing_columns"`
				Status         string   `json:"status"`
			} `json:"tables"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Matched)
		assert.Equal(t, []string{"name"}, body.Tables["records"].MissingColumns)
		assert.Equal(t, "missing_columns", body.Tables["records"].Status)
	})

	t.Run("No Database", func(t *testing.T) {
		resp, err := setupTestApp(t, nil, nil).Test(httptest.NewRequest("GET", "/health/schema", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}
