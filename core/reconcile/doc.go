// Package reconcile converges a Discord guild towards a desired-state document.
//
// The engine is additive: it creates categories and text channels that are
// missing and updates the ones it can match, but it never deletes anything
// that the document does not mention.
//
// # Architecture
//
// A pass is split in two phases, mirroring a plan/apply workflow:
//
// 1. Plan: a Snapshot of the guild (fetched once) is diffed against the
// document. The Matcher finds the observed resource a desired category or
// channel corresponds to, and the diff rules decide between a create, an
// update, or nothing. The result is an ordered ReconcilePlan. Planning has no
// side effects and backs dry runs.
//
// 2. Apply: actions run one at a time, in plan order, against a Platform.
// Identifiers of created categories are threaded forward to the channels
// planned under them, and created resources are inserted into the Snapshot.
// The first failing call aborts the pass and is returned unchanged; work
// already applied stays applied.
//
// # Matching
//
//   - Categories match on kind and exact (case-sensitive) name.
//   - Text channels match on kind, exact name, and parent category id, so two
//     channels with the same name in different categories never interfere.
//   - When several observed resources qualify, the one with the oldest
//     snowflake id wins.
//
// # Update rules
//
//   - Guild: compared on name and icon URL, but only the name is sent. An
//     icon-only difference is reported in ReconcilePlan.Warnings and no call
//     is made.
//   - Category: edited whenever description or nsfw is set, regardless of the
//     current value.
//   - Channel: always edited when matched. The name is always sent; topic,
//     nsfw and position only when set.
//
// # Usage Example
//
//	err := reconcile.Reconcile(ctx, platform, &cfg.Server, guildID)
//
//	// or, with the plan and action count:
//	plan, executed, err := reconcile.ReconcileAndApply(ctx, platform, &cfg.Server, guildID,
//	    reconcile.ReconcileOptions{Logger: logger})
package reconcile
