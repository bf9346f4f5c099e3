package guild

import (
	"context"
	"time"

	"guild-manager/core/reconcile"
	"guild-manager/core/settings"
	"guild-manager/feature/history"

	"go.uber.org/zap"
)

// Sources recorded in the run history.
const (
	SourceCommand = "command"
	SourceAPI     = "api"
	SourceCLI     = "cli"
)

// Recorder stores the outcome of a pass.
type Recorder interface {
	Record(ctx context.Context, run *history.Run) error
}

// Archiver keeps a copy of an applied configuration.
type Archiver interface {
	Save(ctx context.Context, guildID string, raw []byte) (string, error)
}

// Request describes one reconcile pass.
type Request struct {
	GuildID string
	Config  *settings.Config
	// Raw is the YAML the config was parsed from. It is archived after a
	// successful pass when non-empty.
	Raw    []byte
	Source string
	DryRun bool
}

// Result reports what a pass did.
type Result struct {
	Plan       *reconcile.ReconcilePlan `json:"plan"`
	Executed   int                      `json:"executed"`
	DryRun     bool                     `json:"dry_run"`
	ArchiveKey string                   `json:"archive_key,omitempty"`
	DurationMS int64                    `json:"duration_ms"`
}

// Service runs reconcile passes and keeps their side records.
type Service struct {
	platform reconcile.Platform
	recorder Recorder
	archiver Archiver
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a Service. recorder and archiver may be nil.
func NewService(platform reconcile.Platform, recorder Recorder, archiver Archiver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		platform: platform,
		recorder: recorder,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}
}

// Plan computes the actions needed to converge the guild without applying them.
func (s *Service) Plan(ctx context.Context, guildID string, cfg *settings.Config) (*reconcile.ReconcilePlan, *reconcile.Snapshot, error) {
	return reconcile.ReconcileWithPlan(ctx, s.platform, &cfg.Server, guildID)
}

// Apply plans and executes a pass. Engine errors are returned unchanged.
func (s *Service) Apply(ctx context.Context, req Request) (*Result, error) {
	start := s.now()

	plan, snap, err := s.Plan(ctx, req.GuildID, req.Config)
	if err != nil {
		s.record(ctx, req, &Result{}, start, err)
		return nil, err
	}
	return s.execute(ctx, req, plan, snap, start)
}

// Execute applies a plan computed by Plan. On failure the partial Result is
// returned together with the error.
func (s *Service) Execute(ctx context.Context, req Request, plan *reconcile.ReconcilePlan, snap *reconcile.Snapshot) (*Result, error) {
	return s.execute(ctx, req, plan, snap, s.now())
}

func (s *Service) execute(ctx context.Context, req Request, plan *reconcile.ReconcilePlan, snap *reconcile.Snapshot, start time.Time) (*Result, error) {
	l := s.logger.With(zap.String("guild_id", req.GuildID), zap.String("source", req.Source))
	l.Info("Applying configuration",
		zap.Int("actions", len(plan.Actions)),
		zap.Bool("dry_run", req.DryRun),
	)

	executed, err := reconcile.ApplyPlan(ctx, s.platform, snap, plan, reconcile.ReconcileOptions{
		DryRun: req.DryRun,
		Logger: l,
	})
	result := &Result{Plan: plan, Executed: executed, DryRun: req.DryRun}

	if err == nil && !req.DryRun {
		result.ArchiveKey = s.archive(ctx, req, l)
	}

	s.record(ctx, req, result, start, err)
	if err != nil {
		return result, err
	}

	l.Info("Configuration applied", zap.Int("executed", executed), zap.Int64("duration_ms", result.DurationMS))
	return result, nil
}

func (s *Service) archive(ctx context.Context, req Request, l *zap.Logger) string {
	if s.archiver == nil || len(req.Raw) == 0 {
		return ""
	}
	key, err := s.archiver.Save(ctx, req.GuildID, req.Raw)
	if err != nil {
		l.Warn("Failed to archive configuration", zap.Error(err))
		return ""
	}
	return key
}

// record stores the run and fills result.DurationMS. Failures are logged only.
func (s *Service) record(ctx context.Context, req Request, result *Result, start time.Time, runErr error) {
	result.DurationMS = s.now().Sub(start).Milliseconds()
	if s.recorder == nil {
		return
	}

	run := &history.Run{
		GuildID:    req.GuildID,
		Source:     req.Source,
		Status:     history.StatusSuccess,
		Executed:   result.Executed,
		ArchiveKey: result.ArchiveKey,
		DurationMS: result.DurationMS,
	}
	if result.Plan != nil {
		run.Planned = len(result.Plan.Actions)
	}
	switch {
	case runErr != nil:
		run.Status = history.StatusFailed
		run.Error = runErr.Error()
	case req.DryRun:
		run.Status = history.StatusDryRun
	}

	if err := s.recorder.Record(ctx, run); err != nil {
		s.logger.Warn("Failed to record run", zap.String("guild_id", req.GuildID), zap.Error(err))
	}
}
