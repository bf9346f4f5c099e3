package reconcile

import (
	"context"

	"guild-manager/core/settings"
)

// ReconcileWithPlan fetches the guild once and returns the plan together with
// the snapshot it was computed from. It does NOT execute actions; use
// ApplyPlan with the returned snapshot for that.
func ReconcileWithPlan(
	ctx context.Context,
	platform Platform,
	desired *settings.ServerConfig,
	guildID string,
) (*ReconcilePlan, *Snapshot, error) {
	snap, err := BuildSnapshot(ctx, platform, guildID)
	if err != nil {
		return nil, nil, err
	}
	return PlanReconcile(desired, snap), snap, nil
}

// ReconcileAndApply runs a full pass: fetch, plan, then apply unless
// opts.DryRun is set. It returns the plan, the number of actions executed and
// the first error, unchanged.
func ReconcileAndApply(
	ctx context.Context,
	platform Platform,
	desired *settings.ServerConfig,
	guildID string,
	opts ReconcileOptions,
) (*ReconcilePlan, int, error) {
	plan, snap, err := ReconcileWithPlan(ctx, platform, desired, guildID)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, platform, snap, plan, opts)
	return plan, executed, err
}

// Reconcile converges the guild to desired in a single pass and reports only
// the first error. Changes applied before a failure are kept.
func Reconcile(ctx context.Context, platform Platform, desired *settings.ServerConfig, guildID string) error {
	_, _, err := ReconcileAndApply(ctx, platform, desired, guildID, ReconcileOptions{})
	return err
}
