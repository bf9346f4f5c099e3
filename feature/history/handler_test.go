package history

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleList(t *testing.T) {
	db, mock := setupMockDB(t)
	feature := NewFeature(NewStore(db), zap.NewNop())
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	rows := sqlmock.NewRows(runColumns).
		AddRow(1, "100", "api", "success", 1, 1, "", "", 10, time.Now())
	mock.ExpectQuery("SELECT \\* FROM `reconcile_runs` WHERE guild_id = \\?").WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/guilds/100/history?limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var runs []Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "api", runs[0].Source)
}

func TestHandleList_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	app := fiber.New()
	NewHandler(NewStore(db), zap.NewNop()).RegisterRoutes(app)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("gone"))

	resp, err := app.Test(httptest.NewRequest("GET", "/guilds/100/history", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestFeature_DisabledWithoutStore(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "history", feature.Name())
	assert.False(t, feature.IsEnabled())
}
