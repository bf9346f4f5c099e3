package reconcile

import (
	"context"
	"fmt"
	"strconv"
)

// fakeCall records a single platform call.
type fakeCall struct {
	Op     string
	Target string
	Create ChannelCreate
	Edit   ChannelEdit
	Guild  GuildEdit
}

// fakePlatform is an in-memory guild used by the engine tests.
type fakePlatform struct {
	guild     Guild
	resources map[string]Resource
	nextID    int
	calls     []fakeCall

	// fetchErr is returned by FetchGuild when set.
	fetchErr error
	// fail decides whether a mutating call fails.
	fail func(call fakeCall) error
}

func newFakePlatform(name string, resources ...Resource) *fakePlatform {
	f := &fakePlatform{
		guild:     Guild{ID: "1", Name: name},
		resources: make(map[string]Resource),
		nextID:    5000,
	}
	for _, r := range resources {
		f.resources[r.ID] = r
	}
	return f
}

func (f *fakePlatform) FetchGuild(ctx context.Context, guildID string) (*Guild, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if guildID != f.guild.ID {
		return nil, fmt.Errorf("guild %s: %w", guildID, ErrGuildNotFound)
	}
	g := f.guild
	return &g, nil
}

func (f *fakePlatform) FetchChannels(ctx context.Context, guild *Guild) (map[string]Resource, error) {
	out := make(map[string]Resource, len(f.resources))
	for id, r := range f.resources {
		out[id] = r
	}
	return out, nil
}

func (f *fakePlatform) EditGuild(ctx context.Context, guild *Guild, edit GuildEdit) error {
	call := fakeCall{Op: "edit_guild", Target: guild.ID, Guild: edit}
	if err := f.record(call); err != nil {
		return err
	}
	f.guild.Name = edit.Name
	return nil
}

func (f *fakePlatform) CreateChannel(ctx context.Context, guild *Guild, create ChannelCreate) (Resource, error) {
	call := fakeCall{Op: "create_channel", Target: create.Name, Create: create}
	if err := f.record(call); err != nil {
		return Resource{}, err
	}
	f.nextID++
	res := Resource{
		ID:       strconv.Itoa(f.nextID),
		Kind:     create.Kind,
		Name:     create.Name,
		ParentID: create.ParentID,
	}
	f.resources[res.ID] = res
	return res, nil
}

func (f *fakePlatform) EditChannel(ctx context.Context, channelID string, edit ChannelEdit) error {
	call := fakeCall{Op: "edit_channel", Target: channelID, Edit: edit}
	if err := f.record(call); err != nil {
		return err
	}
	if res, ok := f.resources[channelID]; ok && edit.Name != nil {
		res.Name = *edit.Name
		f.resources[channelID] = res
	}
	return nil
}

func (f *fakePlatform) record(call fakeCall) error {
	f.calls = append(f.calls, call)
	if f.fail != nil {
		return f.fail(call)
	}
	return nil
}

func (f *fakePlatform) callsOf(op string) []fakeCall {
	var out []fakeCall
	for _, c := range f.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakePlatform) byKind(kind Kind) []Resource {
	var out []Resource
	for _, r := range f.resources {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func u32Ptr(v uint32) *uint32 { return &v }
