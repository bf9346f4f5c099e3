package reconcile

import (
	"fmt"

	"guild-manager/core/settings"
)

// PlanReconcile diffs the document against the snapshot and returns the
// ordered actions that converge the guild. It does not touch the platform or
// the snapshot.
//
// Actions are ordered as: guild edit, then for each category (sorted by name)
// the category action followed by the actions of its channels (sorted by key).
func PlanReconcile(desired *settings.ServerConfig, snap *Snapshot) *ReconcilePlan {
	p := &planner{
		snap: snap.clone(),
		plan: &ReconcilePlan{
			GuildID: snap.Guild.ID,
			Actions: []Action{},
			Summary: PlanSummary{
				Categories: len(desired.Categories),
				Channels:   desired.ChannelCount(),
			},
		},
	}

	p.planGuild(desired)
	for _, name := range desired.CategoryNames() {
		category := desired.Categories[name]
		categoryID := p.planCategory(name, category)
		for _, key := range category.ChannelKeys() {
			p.planChannel(name+"/"+key, category.Channels[key], categoryID)
		}
	}

	return p.plan
}

// planner works on a private copy of the snapshot so that resources it plans
// to create are visible to later matches in the same plan.
type planner struct {
	snap *Snapshot
	plan *ReconcilePlan
}

func (p *planner) planGuild(desired *settings.ServerConfig) {
	needed, reason := GuildNeedsUpdate(p.snap.Guild, desired)
	if !needed {
		return
	}
	// Only the name is ever sent, so an icon-only difference would be an
	// edit that changes nothing.
	if p.snap.Guild.Name == desired.Name {
		p.plan.Warnings = append(p.plan.Warnings, "guild "+reason)
		return
	}
	edit := guildEdit(desired)
	p.add(Action{
		Type:     ActionUpdateGuild,
		Key:      desired.Name,
		TargetID: p.snap.Guild.ID,
		Reason:   reason,
		Guild:    &edit,
	})
}

// planCategory returns the id of the matched category, or the pending
// reference of the category it plans to create.
func (p *planner) planCategory(name string, desired settings.CategoryConfig) string {
	if id, ok := FindCategory(name, p.snap); ok {
		if !CategoryNeedsUpdate(desired) {
			p.plan.Summary.Unchanged++
			return id
		}
		edit := categoryEdit(desired)
		p.add(Action{
			Type:     ActionUpdateCategory,
			Key:      name,
			TargetID: id,
			Reason:   "category exists; fields set: " + describeFields(desired.Description, desired.NSFW, nil),
			Edit:     &edit,
		})
		return id
	}

	create := categoryCreate(name, desired)
	return p.addCreate(Action{
		Type:   ActionCreateCategory,
		Key:    name,
		Reason: "category not found",
		Create: &create,
	})
}

func (p *planner) planChannel(key string, desired settings.ChannelConfig, categoryID string) {
	if id, ok := FindChannel(desired.Name, categoryID, p.snap); ok {
		if !ChannelNeedsUpdate(desired) {
			return
		}
		edit := channelEdit(desired)
		p.add(Action{
			Type:     ActionUpdateChannel,
			Key:      key,
			TargetID: id,
			Reason:   "channel exists; fields set: name," + describeFields(desired.Topic, desired.NSFW, desired.Position),
			Edit:     &edit,
		})
		return
	}

	create := channelCreate(desired, categoryID)
	p.addCreate(Action{
		Type:   ActionCreateChannel,
		Key:    key,
		Reason: fmt.Sprintf("channel %q not found in category", desired.Name),
		Create: &create,
	})
}

func (p *planner) addCreate(a Action) string {
	a.TargetID = fmt.Sprintf("%s%d", pendingPrefix, len(p.plan.Actions))
	p.snap.Add(Resource{
		ID:       a.TargetID,
		Kind:     a.Create.Kind,
		Name:     a.Create.Name,
		ParentID: a.Create.ParentID,
	})
	p.add(a)
	return a.TargetID
}

func (p *planner) add(a Action) {
	p.plan.Actions = append(p.plan.Actions, a)
	switch a.Type {
	case ActionCreateCategory, ActionCreateChannel:
		p.plan.Summary.Creates++
	case ActionUpdateGuild:
		p.plan.Summary.GuildUpdate = true
		p.plan.Summary.Updates++
	default:
		p.plan.Summary.Updates++
	}
}
