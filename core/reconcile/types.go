package reconcile

import "go.uber.org/zap"

// Kind discriminates the observed resource types the engine cares about.
type Kind int

const (
	// KindOther covers voice, forum, announcement and any other channel type.
	KindOther Kind = iota
	// KindCategory is a channel category.
	KindCategory
	// KindText is a plain text channel.
	KindText
)

// String returns a lower-case label for logs and plans.
func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// MarshalText renders the kind by name in JSON plans.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a label produced by MarshalText. Unknown labels map
// to KindOther.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "category":
		*k = KindCategory
	case "text":
		*k = KindText
	default:
		*k = KindOther
	}
	return nil
}

// Resource is a category or channel observed in the guild.
type Resource struct {
	// ID is the remote identifier (a snowflake for Discord).
	ID string `json:"id"`
	// Kind is the resource type.
	Kind Kind `json:"kind"`
	// Name is the resource name.
	Name string `json:"name"`
	// ParentID is the owning category id; empty for categories and
	// uncategorised channels.
	ParentID string `json:"parent_id,omitempty"`
}

// IsCategory reports whether the resource is a category.
func (r Resource) IsCategory() bool {
	return r.Kind == KindCategory
}

// IsTextChannel reports whether the resource is a text channel.
func (r Resource) IsTextChannel() bool {
	return r.Kind == KindText
}

// Guild is the handle returned by the platform for a guild.
type Guild struct {
	// ID is the guild id.
	ID string `json:"id"`
	// Name is the current guild name.
	Name string `json:"name"`
	// IconURL is the current icon URL, empty when the guild has no icon.
	IconURL string `json:"icon_url,omitempty"`
}

// GuildEdit carries the guild fields sent on update.
type GuildEdit struct {
	Name string `json:"name"`
}

// ChannelCreate carries the fields sent when creating a category or channel.
// Optional fields are nil when they should be left to platform defaults.
type ChannelCreate struct {
	Kind     Kind    `json:"kind"`
	Name     string  `json:"name"`
	Topic    *string `json:"topic,omitempty"`
	NSFW     *bool   `json:"nsfw,omitempty"`
	Position *int    `json:"position,omitempty"`
	// ParentID is the category to create the channel under. Inside a plan it
	// may hold a pending reference to a category created earlier in the plan.
	ParentID string `json:"parent_id,omitempty"`
}

// ChannelEdit carries the fields sent when editing a category or channel.
// Nil fields are left untouched.
type ChannelEdit struct {
	Name     *string `json:"name,omitempty"`
	Topic    *string `json:"topic,omitempty"`
	NSFW     *bool   `json:"nsfw,omitempty"`
	Position *int    `json:"position,omitempty"`
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionUpdateGuild edits guild-level attributes.
	ActionUpdateGuild ActionType = "update_guild"
	// ActionCreateCategory creates a missing category.
	ActionCreateCategory ActionType = "create_category"
	// ActionUpdateCategory edits a matched category.
	ActionUpdateCategory ActionType = "update_category"
	// ActionCreateChannel creates a missing text channel.
	ActionCreateChannel ActionType = "create_channel"
	// ActionUpdateChannel edits a matched text channel.
	ActionUpdateChannel ActionType = "update_channel"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key names the desired entry, e.g. "Text" or "Text/general".
	Key string `json:"key"`

	// TargetID is the resource the action applies to. For creates it is the
	// pending reference later actions use to address the new resource.
	TargetID string `json:"target_id,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Guild is set for ActionUpdateGuild.
	Guild *GuildEdit `json:"guild,omitempty"`

	// Create is set for the create actions.
	Create *ChannelCreate `json:"create,omitempty"`

	// Edit is set for the category and channel update actions.
	Edit *ChannelEdit `json:"edit,omitempty"`
}

// ReconcilePlan contains the ordered actions for one pass.
type ReconcilePlan struct {
	// GuildID is the guild the plan was computed for.
	GuildID string `json:"guild_id"`

	// Actions are executed in order by ApplyPlan.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`

	// Warnings lists differences the plan detected but cannot apply.
	Warnings []string `json:"warnings,omitempty"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Categories is the number of desired categories.
	Categories int `json:"categories"`

	// Channels is the number of desired channels.
	Channels int `json:"channels"`

	// Creates counts planned create actions.
	Creates int `json:"creates"`

	// Updates counts planned update actions, including the guild edit.
	Updates int `json:"updates"`

	// Unchanged counts matched categories that need no call.
	Unchanged int `json:"unchanged"`

	// GuildUpdate reports whether the guild itself will be edited.
	GuildUpdate bool `json:"guild_update"`
}

// ReconcileOptions controls how a plan is applied.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Logger receives one entry per executed action. Nil disables logging.
	Logger *zap.Logger
}

func (o ReconcileOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
