package guild_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"guild-manager/core/reconcile"
	"guild-manager/feature/guild"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, platform *memoryPlatform) *fiber.App {
	t.Helper()
	feature := guild.NewFeature(guild.NewService(platform, nil, nil, zap.NewNop()))
	assert.Equal(t, "guild", feature.Name())
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/yaml")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandlePlan(t *testing.T) {
	platform := newMemoryPlatform("100", "Old Name")
	app := newTestApp(t, platform)

	status, body := post(t, app, "/guilds/100/plan", guildYAML)
	require.Equal(t, fiber.StatusOK, status)

	var plan reconcile.ReconcilePlan
	raw, _ := json.Marshal(body)
	require.NoError(t, json.Unmarshal(raw, &plan))

	assert.Equal(t, "100", plan.GuildID)
	require.Len(t, plan.Actions, 4)
	assert.Equal(t, reconcile.ActionUpdateGuild, plan.Actions[0].Type)
	assert.Equal(t, reconcile.ActionCreateCategory, plan.Actions[1].Type)
	assert.Empty(t, platform.resources)
}

func TestHandleApply(t *testing.T) {
	platform := newMemoryPlatform("100", "Old Name")
	app := newTestApp(t, platform)

	status, body := post(t, app, "/guilds/100/apply", guildYAML)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, float64(4), body["executed"])
	assert.Equal(t, false, body["dry_run"])
	assert.Len(t, platform.resources, 3)
}

func TestHandleApply_DryRun(t *testing.T) {
	platform := newMemoryPlatform("100", "Old Name")
	app := newTestApp(t, platform)

	status, body := post(t, app, "/guilds/100/apply?dry_run=true", guildYAML)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, float64(0), body["executed"])
	assert.Equal(t, true, body["dry_run"])
	assert.Empty(t, platform.resources)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"Malformed YAML", "/guilds/100/plan", "server: [", fiber.StatusBadRequest},
		{"Missing name", "/guilds/100/apply", "server:\n  categories: {}\n", fiber.StatusBadRequest},
		{"Unknown guild", "/guilds/999/plan", guildYAML, fiber.StatusNotFound},
		{"Unknown guild on apply", "/guilds/999/apply", guildYAML, fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, newMemoryPlatform("100", "x"))
			status, body := post(t, app, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleApply_PlatformFailure(t *testing.T) {
	platform := newMemoryPlatform("100", "Old Name")
	platform.createErr = errors.New("Missing Permissions")
	app := newTestApp(t, platform)

	status, body := post(t, app, "/guilds/100/apply", guildYAML)
	assert.Equal(t, fiber.StatusBadGateway, status)
	// The guild rename ran before the first create failed.
	assert.Equal(t, float64(1), body["executed"])
	assert.Equal(t, "create_channel Text: Missing Permissions", body["error"])
}
