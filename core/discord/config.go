package discord

// Config holds configuration for the Discord bot.
type Config struct {
	// Token is the bot token, without the "Bot " prefix.
	Token string `mapstructure:"token" default:""`
	// Prefix starts every chat command (e.g. "~set").
	Prefix string `mapstructure:"prefix" default:"~"`
	// TimeoutSeconds bounds every REST call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CooldownSeconds is the minimum delay between two passes on one guild.
	CooldownSeconds int `mapstructure:"cooldown_seconds" default:"10"`
}

// Enabled reports whether a token is configured.
func (c Config) Enabled() bool {
	return c.Token != ""
}
