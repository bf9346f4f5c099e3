package reconcile

import "context"

// Platform is the chat platform the engine reads from and writes to.
// Implementations own transport concerns such as timeouts and rate limits;
// the engine calls them sequentially and never retries.
type Platform interface {
	// FetchGuild resolves a guild id. It returns an error wrapping
	// ErrGuildNotFound when the guild does not exist or is not accessible.
	FetchGuild(ctx context.Context, guildID string) (*Guild, error)

	// FetchChannels lists every channel and category of the guild keyed by id.
	FetchChannels(ctx context.Context, guild *Guild) (map[string]Resource, error)

	// EditGuild updates guild-level attributes.
	EditGuild(ctx context.Context, guild *Guild, edit GuildEdit) error

	// CreateChannel creates a category or channel and returns it as observed.
	CreateChannel(ctx context.Context, guild *Guild, create ChannelCreate) (Resource, error)

	// EditChannel updates a category or channel.
	EditChannel(ctx context.Context, channelID string, edit ChannelEdit) error
}
