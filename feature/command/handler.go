package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"guild-manager/core/discord"
	"guild-manager/core/settings"
	"guild-manager/feature/guild"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Replies sent to the command author.
const (
	ReplyOutsideGuild = "Cannot run this outside of a Guild."
	ReplyInvalidYAML  = "Invalid YAML structure for configuring the server."
	ReplyConfiguring  = "Configuring..."
	ReplyFinished     = "Finished..."
	ReplyFailed       = "Could not complete the setup. "
)

// Applier runs a reconcile pass.
type Applier interface {
	Apply(ctx context.Context, req guild.Request) (*guild.Result, error)
}

// Message is the part of a chat message the handler reads.
type Message struct {
	ChannelID string
	// GuildID is empty for direct messages.
	GuildID string
	Content string
}

// Handler turns chat messages into reconcile passes.
type Handler struct {
	session  discord.Session
	applier  Applier
	cooldown *Cooldown
	prefix   string
	logger   *zap.Logger
}

// NewHandler creates a Handler replying through session.
func NewHandler(session discord.Session, applier Applier, cfg discord.Config, logger *zap.Logger) *Handler {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "~"
	}
	return &Handler{
		session:  session,
		applier:  applier,
		cooldown: NewCooldown(time.Duration(cfg.CooldownSeconds) * time.Second),
		prefix:   prefix,
		logger:   logger,
	}
}

// OnMessageCreate is registered with discordgo.Session.AddHandler.
func (h *Handler) OnMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author != nil && m.Author.Bot {
		return
	}
	msg := Message{ChannelID: m.ChannelID, GuildID: m.GuildID, Content: m.Content}
	if err := h.Handle(context.Background(), msg); err != nil {
		h.logger.Error("Error processing command",
			zap.String("guild_id", m.GuildID),
			zap.String("channel_id", m.ChannelID),
			zap.Error(err),
		)
	}
}

// Handle runs the command in msg, if any. User errors are answered in the
// channel; the returned error is a failure to talk to the chat itself.
func (h *Handler) Handle(ctx context.Context, msg Message) error {
	name, args, ok := Split(msg.Content, h.prefix)
	if !ok || name != "set" {
		return nil
	}

	err := h.set(ctx, msg, args)

	var userErr *UserError
	if errors.As(err, &userErr) {
		return h.reply(msg.ChannelID, userErr.Message)
	}
	return err
}

func (h *Handler) set(ctx context.Context, msg Message, args string) error {
	if msg.GuildID == "" {
		return userError(ReplyOutsideGuild)
	}

	raw := ExtractYAML(args)
	cfg, err := settings.Parse([]byte(raw))
	if err != nil {
		h.logger.Debug("Rejected configuration", zap.String("guild_id", msg.GuildID), zap.Error(err))
		return userError(ReplyInvalidYAML)
	}

	if wait, ok := h.cooldown.Begin(msg.GuildID); !ok {
		secs := int(math.Ceil(wait.Seconds()))
		return userError(fmt.Sprintf("This server was configured recently. Try again in %d seconds.", secs))
	}
	defer h.cooldown.End(msg.GuildID)

	if err := h.reply(msg.ChannelID, ReplyConfiguring); err != nil {
		return err
	}

	_, err = h.applier.Apply(ctx, guild.Request{
		GuildID: msg.GuildID,
		Config:  cfg,
		Raw:     []byte(raw),
		Source:  guild.SourceCommand,
	})
	if err != nil {
		h.logger.Warn("Failed at configuring", zap.String("guild_id", msg.GuildID), zap.Error(err))
		return h.reply(msg.ChannelID, ReplyFailed+err.Error())
	}
	return h.reply(msg.ChannelID, ReplyFinished)
}

func (h *Handler) reply(channelID, content string) error {
	if _, err := h.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("failed to reply in channel %s: %w", channelID, err)
	}
	return nil
}
