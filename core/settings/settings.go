package settings

import "sort"

// Config is the root of a desired-state document.
type Config struct {
	// Server holds everything that is applied to the guild.
	Server ServerConfig `yaml:"server" json:"server"`
}

// ServerConfig describes the guild itself and its categories.
type ServerConfig struct {
	// Name is the guild name.
	Name string `yaml:"name" json:"name"`
	// Description is accepted for completeness but is not applied to the guild.
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
	// IconURL is compared against the guild's current icon URL.
	IconURL *string `yaml:"icon_url,omitempty" json:"icon_url,omitempty"`
	// Categories maps category names to their configuration.
	Categories map[string]CategoryConfig `yaml:"categories" json:"categories"`
}

// CategoryConfig describes a category and the text channels nested under it.
type CategoryConfig struct {
	// Description is sent as the category topic.
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
	// NSFW marks the category as age restricted.
	NSFW *bool `yaml:"nsfw,omitempty" json:"nsfw,omitempty"`
	// Channels maps a channel key to its configuration.
	Channels map[string]ChannelConfig `yaml:"channels" json:"channels"`
}

// ChannelConfig describes a single text channel.
type ChannelConfig struct {
	// Name is the channel name used for matching and for create/edit calls.
	// It may differ from the map key the channel is declared under.
	Name string `yaml:"name" json:"name"`
	// Topic is the channel topic.
	Topic *string `yaml:"topic,omitempty" json:"topic,omitempty"`
	// NSFW marks the channel as age restricted.
	NSFW *bool `yaml:"nsfw,omitempty" json:"nsfw,omitempty"`
	// Position is the sort position within the category.
	Position *uint32 `yaml:"position,omitempty" json:"position,omitempty"`
	// ParentCategory is parsed but never consulted: a channel always belongs
	// to the category it is nested under.
	ParentCategory *string `yaml:"parent_category,omitempty" json:"parent_category,omitempty"`
}

// CategoryNames returns the category keys in sorted order.
func (s ServerConfig) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChannelKeys returns the channel keys in sorted order.
func (c CategoryConfig) ChannelKeys() []string {
	keys := make([]string, 0, len(c.Channels))
	for key := range c.Channels {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ChannelCount returns the number of channels across all categories.
func (s ServerConfig) ChannelCount() int {
	n := 0
	for _, category := range s.Categories {
		n += len(category.Channels)
	}
	return n
}
