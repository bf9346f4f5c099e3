package guild

import (
	"errors"

	"guild-manager/core/logger"
	"guild-manager/core/reconcile"
	"guild-manager/core/settings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for guild reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the guild routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/guilds/:id")
	group.Post("/plan", h.HandlePlan)
	group.Post("/apply", h.HandleApply)
}

// HandlePlan computes the plan for a configuration without applying it.
// @Summary Plan a guild configuration
// @Description Reads the guild once and returns the ordered actions that applying the YAML body would execute. Nothing is changed.
// @Tags guilds
// @Accept application/yaml
// @Produce json
// @Param id path string true "Guild ID"
// @Param config body string true "Guild configuration (YAML)"
// @Success 200 {object} reconcile.ReconcilePlan
// @Failure 400 {object} map[string]string "Invalid configuration"
// @Failure 404 {object} map[string]string "Guild not found"
// @Failure 502 {object} map[string]string "Platform error"
// @Router /guilds/{id}/plan [post]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	guildID := c.Params("id")
	l := logger.WithGuild(logger.WithRayID(h.service.logger, c), guildID)

	cfg, err := settings.Parse(c.Body())
	if err != nil {
		return respondError(c, l, err)
	}

	plan, _, err := h.service.Plan(c.Context(), guildID, cfg)
	if err != nil {
		return respondError(c, l, err)
	}

	l.Info("Plan computed", zap.Int("actions", len(plan.Actions)))
	return c.JSON(plan)
}

// HandleApply applies a configuration to the guild.
// @Summary Apply a guild configuration
// @Description Converges the guild to the YAML body. Actions run in order and the first failure stops the pass; the response then carries the number of actions already executed.
// @Tags guilds
// @Accept application/yaml
// @Produce json
// @Param id path string true "Guild ID"
// @Param dry_run query bool false "Plan only"
// @Param config body string true "Guild configuration (YAML)"
// @Success 200 {object} guild.Result
// @Failure 400 {object} map[string]string "Invalid configuration"
// @Failure 404 {object} map[string]string "Guild not found"
// @Failure 502 {object} map[string]interface{} "Platform error"
// @Router /guilds/{id}/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	guildID := c.Params("id")
	l := logger.WithGuild(logger.WithRayID(h.service.logger, c), guildID)

	body := c.Body()
	cfg, err := settings.Parse(body)
	if err != nil {
		return respondError(c, l, err)
	}

	// Fiber reuses the body buffer once the handler returns.
	raw := append([]byte(nil), body...)

	result, err := h.service.Apply(c.Context(), Request{
		GuildID: guildID,
		Config:  cfg,
		Raw:     raw,
		Source:  SourceAPI,
		DryRun:  c.QueryBool("dry_run", false),
	})
	if err != nil {
		if result != nil {
			return respondError(c, l.With(zap.Int("executed", result.Executed)), err, fiber.Map{"executed": result.Executed})
		}
		return respondError(c, l, err)
	}
	return c.JSON(result)
}

// respondError maps err to a status code and writes it with any extra fields.
func respondError(c *fiber.Ctx, l *zap.Logger, err error, extra ...fiber.Map) error {
	status := statusOf(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Request failed", zap.Error(err))
	} else {
		l.Info("Request rejected", zap.Int("status", status), zap.Error(err))
	}

	body := fiber.Map{"error": err.Error()}
	for _, m := range extra {
		for k, v := range m {
			body[k] = v
		}
	}
	return c.Status(status).JSON(body)
}

func statusOf(err error) int {
	var validationErr *settings.ValidationError
	var platformErr *reconcile.PlatformError
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrGuildNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &platformErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
