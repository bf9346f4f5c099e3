package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"guild-manager/core/reconcile"

	"github.com/bwmarrin/discordgo"
)

// Session is the subset of *discordgo.Session used by the application.
type Session interface {
	// Guild fetches a guild.
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	// GuildChannels lists all channels and categories of a guild.
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	// GuildEdit edits guild attributes.
	GuildEdit(guildID string, g *discordgo.GuildParams, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	// RequestWithBucketID sends a raw REST request. Channel creates and edits
	// go through it because the discordgo payload structs drop zero values.
	RequestWithBucketID(method, urlStr string, data interface{}, bucketID string, options ...discordgo.RequestOption) ([]byte, error)
	// ChannelMessageSend posts a message to a channel.
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NewSession creates a bot session that receives guild message content.
// The gateway connection is not opened.
func NewSession(cfg Config) (*discordgo.Session, error) {
	if !cfg.Enabled() {
		return nil, errors.New("discord token is not configured")
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	s.Client.Timeout = timeout(cfg)

	return s, nil
}

// Client implements reconcile.Platform using the Discord REST API.
type Client struct {
	session Session
	timeout time.Duration
}

var _ reconcile.Platform = (*Client)(nil)

// NewClient creates a platform client on top of a session.
func NewClient(session Session, cfg Config) *Client {
	return &Client{
		session: session,
		timeout: timeout(cfg),
	}
}

// FetchGuild resolves a guild by id.
func (c *Client) FetchGuild(ctx context.Context, guildID string) (*reconcile.Guild, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	g, err := c.session.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		if isGuildNotFound(err) {
			return nil, fmt.Errorf("guild %s: %w", guildID, reconcile.ErrGuildNotFound)
		}
		return nil, &reconcile.PlatformError{Op: "fetch_guild", Target: guildID, Err: err}
	}

	return &reconcile.Guild{
		ID:      g.ID,
		Name:    g.Name,
		IconURL: g.IconURL(""),
	}, nil
}

// FetchChannels lists every channel and category of the guild.
func (c *Client) FetchChannels(ctx context.Context, guild *reconcile.Guild) (map[string]reconcile.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	channels, err := c.session.GuildChannels(guild.ID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, &reconcile.PlatformError{Op: "fetch_channels", Target: guild.ID, Err: err}
	}

	resources := make(map[string]reconcile.Resource, len(channels))
	for _, ch := range channels {
		if ch == nil {
			continue
		}
		resources[ch.ID] = resourceOf(ch)
	}
	return resources, nil
}

// EditGuild sends the guild name.
func (c *Client) EditGuild(ctx context.Context, guild *reconcile.Guild, edit reconcile.GuildEdit) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &discordgo.GuildParams{Name: edit.Name}
	if _, err := c.session.GuildEdit(guild.ID, params, discordgo.WithContext(ctx)); err != nil {
		return &reconcile.PlatformError{Op: "edit_guild", Target: guild.ID, Err: err}
	}
	return nil
}

// channelCreate is the body of POST /guilds/{id}/channels. Pointer fields
// are sent whenever set, zero values included.
type channelCreate struct {
	Name     string                `json:"name"`
	Type     discordgo.ChannelType `json:"type"`
	Topic    *string               `json:"topic,omitempty"`
	NSFW     *bool                 `json:"nsfw,omitempty"`
	Position *int                  `json:"position,omitempty"`
	ParentID string                `json:"parent_id,omitempty"`
}

// channelEdit is the body of PATCH /channels/{id}. Nil fields are left untouched.
type channelEdit struct {
	Name     *string `json:"name,omitempty"`
	Topic    *string `json:"topic,omitempty"`
	NSFW     *bool   `json:"nsfw,omitempty"`
	Position *int    `json:"position,omitempty"`
}

// CreateChannel creates a category or text channel.
func (c *Client) CreateChannel(ctx context.Context, guild *reconcile.Guild, create reconcile.ChannelCreate) (reconcile.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data := channelCreate{
		Name:     create.Name,
		Type:     channelType(create.Kind),
		Topic:    create.Topic,
		NSFW:     create.NSFW,
		Position: create.Position,
		ParentID: create.ParentID,
	}

	endpoint := discordgo.EndpointGuildChannels(guild.ID)
	body, err := c.session.RequestWithBucketID(http.MethodPost, endpoint, data, endpoint, discordgo.WithContext(ctx))
	if err != nil {
		return reconcile.Resource{}, &reconcile.PlatformError{Op: "create_channel", Target: create.Name, Err: err}
	}

	var ch discordgo.Channel
	if err := json.Unmarshal(body, &ch); err != nil {
		return reconcile.Resource{}, &reconcile.PlatformError{Op: "create_channel", Target: create.Name, Err: err}
	}
	return resourceOf(&ch), nil
}

// EditChannel edits a category or text channel. Nil fields are not sent.
func (c *Client) EditChannel(ctx context.Context, channelID string, edit reconcile.ChannelEdit) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data := channelEdit{
		Name:     edit.Name,
		Topic:    edit.Topic,
		NSFW:     edit.NSFW,
		Position: edit.Position,
	}

	endpoint := discordgo.EndpointChannel(channelID)
	if _, err := c.session.RequestWithBucketID(http.MethodPatch, endpoint, data, endpoint, discordgo.WithContext(ctx)); err != nil {
		return &reconcile.PlatformError{Op: "edit_channel", Target: channelID, Err: err}
	}
	return nil
}

func resourceOf(ch *discordgo.Channel) reconcile.Resource {
	return reconcile.Resource{
		ID:       ch.ID,
		Kind:     kindOf(ch.Type),
		Name:     ch.Name,
		ParentID: ch.ParentID,
	}
}

func kindOf(t discordgo.ChannelType) reconcile.Kind {
	switch t {
	case discordgo.ChannelTypeGuildCategory:
		return reconcile.KindCategory
	case discordgo.ChannelTypeGuildText:
		return reconcile.KindText
	default:
		return reconcile.KindOther
	}
}

func channelType(k reconcile.Kind) discordgo.ChannelType {
	if k == reconcile.KindCategory {
		return discordgo.ChannelTypeGuildCategory
	}
	return discordgo.ChannelTypeGuildText
}

// isGuildNotFound reports whether a guild lookup failed because the guild
// does not exist or the bot is not a member.
func isGuildNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownGuild, discordgo.ErrCodeMissingAccess:
			return true
		}
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

func timeout(cfg Config) time.Duration {
	// Ensure timeout defaults if not set
	seconds := cfg.TimeoutSeconds
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}
