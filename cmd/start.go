package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"guild-manager/core/config"
	"guild-manager/core/discord"
	"guild-manager/core/loader"
	"guild-manager/core/logger"
	"guild-manager/core/middleware/auth"
	"guild-manager/core/middleware/rayid"
	"guild-manager/feature/command"
	"guild-manager/feature/guild"
	"guild-manager/feature/history"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "guild-manager/docs/swagger"
)

// @title Guild Manager API
// @version 1.0
// @description Declarative configuration of Discord guilds.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chat bot and the HTTP API",
	Long: `Connects the bot to the Discord gateway to answer ~set commands and,
unless disabled, serves the HTTP API.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		session, err := discord.NewSession(cfg.Discord)
		if err != nil {
			logg.Fatal("Failed to create discord session", zap.Error(err))
		}

		stores, err := openSideStores(context.Background(), cfg, logg)
		if err != nil {
			logg.Warn("Optional backend unavailable", zap.Error(err))
		}
		svc := guild.NewService(discord.NewClient(session, cfg.Discord), stores.recorder(), stores.archiver(), logg)

		handler := command.NewHandler(session, svc, cfg.Discord, logg)
		session.AddHandler(handler.OnMessageCreate)
		session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
			logg.Info("The bot is ready", zap.String("user", r.User.Username), zap.Int("guilds", len(r.Guilds)))
		})

		if err := session.Open(); err != nil {
			logg.Fatal("Failed to open discord gateway", zap.Error(err))
		}

		var app *fiber.App
		if cfg.Server.Enabled {
			app = newApp(cfg, logg, svc, stores.history)
			go func() {
				logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
				if err := app.Listen(cfg.Server.Address()); err != nil {
					logg.Fatal("Server failed to start", zap.Error(err))
				}
			}()
		}

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")
		if app != nil {
			_ = app.Shutdown()
		}
		_ = session.Close()
	},
}

// newApp builds the Fiber application with middleware and features.
func newApp(cfg *config.Config, logg *zap.Logger, svc *guild.Service, historyStore *history.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Public.
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	if !cfg.Server.IsProtected() {
		logg.Warn("HTTP API is not protected, set SERVER_API_KEY")
	}

	mgr := loader.NewManager()
	mgr.Register(guild.NewFeature(svc))
	mgr.Register(history.NewFeature(historyStore, logg))

	if err := mgr.LoadAll(app); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}
	for _, f := range mgr.Features() {
		logg.Debug("Feature", zap.String("name", f.Name()), zap.Bool("enabled", f.IsEnabled()))
	}

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
