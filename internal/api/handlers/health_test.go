package handlers_test

import (
	"net/http"
	"testing"

	"vehicle-maintenance-backend/internal/api/handlers"
	"vehicle-maintenance-backend/internal/storage"
	"vehicle-maintenance-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	handler := handlers.NewHealthHandler(db, storage.NewMemoryStore())

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("health", func(t *testing.T) {
		w := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "healthy", got.Status)
		assert.Equal(t, "healthy", got.Services["database"])
		assert.Equal(t, "memory", got.Services["storage"])
	})

	t.Run("ready", func(t *testing.T) {
		w := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ready":true`)
	})

	t.Run("live", func(t *testing.T) {
		w := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("database down", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		w := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unhealthy")
	})
}
