package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ApplyPlan executes the actions of a plan in order against the platform.
// Returns the number of actions executed and the first error encountered,
// which is returned exactly as the platform produced it. Resources created
// along the way are added to snap.
// Nothing is executed when opts.DryRun is set.
func ApplyPlan(
	ctx context.Context,
	platform Platform,
	snap *Snapshot,
	plan *ReconcilePlan,
	opts ReconcileOptions,
) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}

	l := opts.logger().With(zap.String("guild_id", snap.Guild.ID))
	for _, w := range plan.Warnings {
		l.Warn("Difference not applied", zap.String("detail", w))
	}

	// Pending references from the plan resolve to ids returned by create calls.
	created := make(map[string]string)
	resolve := func(ref string) string {
		if id, ok := created[ref]; ok {
			return id
		}
		return ref
	}

	for _, action := range plan.Actions {
		if err := applyAction(ctx, platform, snap, action, resolve, created); err != nil {
			l.Error("Action failed",
				zap.String("action", string(action.Type)),
				zap.String("key", action.Key),
				zap.Int("executed", executed),
				zap.Error(err),
			)
			return executed, err
		}
		executed++
		l.Info("Action applied",
			zap.String("action", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("target", resolve(action.TargetID)),
		)
	}

	return executed, nil
}

func applyAction(
	ctx context.Context,
	platform Platform,
	snap *Snapshot,
	action Action,
	resolve func(string) string,
	created map[string]string,
) error {
	switch action.Type {
	case ActionUpdateGuild:
		if action.Guild == nil {
			return fmt.Errorf("action %s %q has no guild edit", action.Type, action.Key)
		}
		if err := platform.EditGuild(ctx, &snap.Guild, *action.Guild); err != nil {
			return err
		}
		snap.Guild.Name = action.Guild.Name

	case ActionCreateCategory, ActionCreateChannel:
		if action.Create == nil {
			return fmt.Errorf("action %s %q has no create payload", action.Type, action.Key)
		}
		create := *action.Create
		create.ParentID = resolve(create.ParentID)

		res, err := platform.CreateChannel(ctx, &snap.Guild, create)
		if err != nil {
			return err
		}
		if res.Name == "" {
			res.Name = create.Name
		}
		if res.Kind == KindOther {
			res.Kind = create.Kind
		}
		if res.ParentID == "" {
			res.ParentID = create.ParentID
		}
		created[action.TargetID] = res.ID
		snap.Add(res)

	case ActionUpdateCategory, ActionUpdateChannel:
		if action.Edit == nil {
			return fmt.Errorf("action %s %q has no edit payload", action.Type, action.Key)
		}
		id := resolve(action.TargetID)
		if err := platform.EditChannel(ctx, id, *action.Edit); err != nil {
			return err
		}
		if action.Edit.Name != nil {
			if res, ok := snap.Get(id); ok {
				res.Name = *action.Edit.Name
				snap.Add(res)
			}
		}

	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}
	return nil
}
