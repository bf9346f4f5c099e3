package history

import "time"

// Status is the outcome of a reconcile pass.
type Status string

const (
	// StatusSuccess marks a pass that applied every planned action.
	StatusSuccess Status = "success"
	// StatusFailed marks a pass stopped by the first failing action.
	StatusFailed Status = "failed"
	// StatusDryRun marks a pass that only computed the plan.
	StatusDryRun Status = "dry_run"
)

// Run is one reconcile pass against a guild.
type Run struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	GuildID string `gorm:"size:32;index" json:"guild_id"`
	// Source is the entry point that triggered the pass: command, api or cli.
	Source string `gorm:"size:16" json:"source"`
	Status Status `gorm:"size:16" json:"status"`
	// Planned is the number of actions in the plan.
	Planned int `json:"planned"`
	// Executed is the number of actions that succeeded.
	Executed int    `json:"executed"`
	Error    string `gorm:"type:text" json:"error,omitempty"`
	// ArchiveKey is the object key of the archived configuration, if any.
	ArchiveKey string    `gorm:"size:255" json:"archive_key,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides the table name used by Run to `reconcile_runs`.
func (Run) TableName() string {
	return "reconcile_runs"
}
