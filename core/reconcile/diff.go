package reconcile

import (
	"fmt"
	"strings"

	"guild-manager/core/settings"
)

// GuildNeedsUpdate reports whether the guild differs from the document in
// name or icon URL, along with a reason describing the difference.
// An unset icon URL in the document compares equal to a guild without icon.
func GuildNeedsUpdate(guild Guild, desired *settings.ServerConfig) (bool, string) {
	var diffs []string
	if guild.Name != desired.Name {
		diffs = append(diffs, fmt.Sprintf("name: current=%q desired=%q", guild.Name, desired.Name))
	}

	desiredIcon := ""
	if desired.IconURL != nil {
		desiredIcon = *desired.IconURL
	}
	if guild.IconURL != desiredIcon {
		diffs = append(diffs, fmt.Sprintf("icon_url: current=%q desired=%q (icon is not transmitted)", guild.IconURL, desiredIcon))
	}

	if len(diffs) == 0 {
		return false, ""
	}
	return true, strings.Join(diffs, "; ")
}

// CategoryNeedsUpdate reports whether a matched category gets an edit call.
// Presence of an optional field is enough; current values are not compared.
func CategoryNeedsUpdate(desired settings.CategoryConfig) bool {
	return desired.Description != nil || desired.NSFW != nil
}

// ChannelNeedsUpdate reports whether a matched channel gets an edit call.
// Channels are always re-sent because the name is part of every edit.
func ChannelNeedsUpdate(settings.ChannelConfig) bool {
	return true
}

func guildEdit(desired *settings.ServerConfig) GuildEdit {
	return GuildEdit{Name: desired.Name}
}

func categoryEdit(desired settings.CategoryConfig) ChannelEdit {
	return ChannelEdit{
		Topic: desired.Description,
		NSFW:  desired.NSFW,
	}
}

func categoryCreate(name string, desired settings.CategoryConfig) ChannelCreate {
	return ChannelCreate{
		Kind:  KindCategory,
		Name:  name,
		Topic: desired.Description,
		NSFW:  desired.NSFW,
	}
}

func channelEdit(desired settings.ChannelConfig) ChannelEdit {
	name := desired.Name
	return ChannelEdit{
		Name:     &name,
		Topic:    desired.Topic,
		NSFW:     desired.NSFW,
		Position: position(desired.Position),
	}
}

func channelCreate(desired settings.ChannelConfig, parentID string) ChannelCreate {
	return ChannelCreate{
		Kind:     KindText,
		Name:     desired.Name,
		Topic:    desired.Topic,
		NSFW:     desired.NSFW,
		Position: position(desired.Position),
		ParentID: parentID,
	}
}

func position(p *uint32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

func describeFields(topic *string, nsfw *bool, pos *uint32) string {
	var fields []string
	if topic != nil {
		fields = append(fields, "topic")
	}
	if nsfw != nil {
		fields = append(fields, "nsfw")
	}
	if pos != nil {
		fields = append(fields, "position")
	}
	if len(fields) == 0 {
		return "none"
	}
	return strings.Join(fields, ",")
}
