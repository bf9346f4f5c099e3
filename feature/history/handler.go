package history

import (
	"guild-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the run history.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/guilds/:id/history", h.HandleList)
}

// HandleList returns the latest runs of a guild.
// @Summary List reconcile runs
// @Description Returns the most recent reconcile passes recorded for the guild, newest first.
// @Tags history
// @Produce json
// @Param id path string true "Guild ID"
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} history.Run
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /guilds/{id}/history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	guildID := c.Params("id")
	runs, err := h.store.ListByGuild(c.Context(), guildID, c.QueryInt("limit", DefaultLimit))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to list history", zap.String("guild_id", guildID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}
