package guild_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"guild-manager/core/reconcile"
	"guild-manager/feature/history"

	"github.com/stretchr/testify/mock"
)

// memoryPlatform is an in-memory guild.
type memoryPlatform struct {
	mu        sync.Mutex
	guild     reconcile.Guild
	resources map[string]reconcile.Resource
	nextID    int
	// createErr makes every CreateChannel call fail.
	createErr error
}

func newMemoryPlatform(guildID, name string) *memoryPlatform {
	return &memoryPlatform{
		guild:     reconcile.Guild{ID: guildID, Name: name},
		resources: make(map[string]reconcile.Resource),
		nextID:    9000,
	}
}

func (p *memoryPlatform) FetchGuild(ctx context.Context, guildID string) (*reconcile.Guild, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if guildID != p.guild.ID {
		return nil, fmt.Errorf("guild %s: %w", guildID, reconcile.ErrGuildNotFound)
	}
	g := p.guild
	return &g, nil
}

func (p *memoryPlatform) FetchChannels(ctx context.Context, guild *reconcile.Guild) (map[string]reconcile.Resource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]reconcile.Resource, len(p.resources))
	for id, r := range p.resources {
		out[id] = r
	}
	return out, nil
}

func (p *memoryPlatform) EditGuild(ctx context.Context, guild *reconcile.Guild, edit reconcile.GuildEdit) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.guild.Name = edit.Name
	return nil
}

func (p *memoryPlatform) CreateChannel(ctx context.Context, guild *reconcile.Guild, create reconcile.ChannelCreate) (reconcile.Resource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.createErr != nil {
		return reconcile.Resource{}, &reconcile.PlatformError{Op: "create_channel", Target: create.Name, Err: p.createErr}
	}
	r := reconcile.Resource{
		ID:       strconv.Itoa(p.nextID),
		Kind:     create.Kind,
		Name:     create.Name,
		ParentID: create.ParentID,
	}
	p.nextID++
	p.resources[r.ID] = r
	return r, nil
}

func (p *memoryPlatform) EditChannel(ctx context.Context, channelID string, edit reconcile.ChannelEdit) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.resources[channelID]
	if !ok {
		return &reconcile.PlatformError{Op: "edit_channel", Target: channelID, Err: errors.New("unknown channel")}
	}
	if edit.Name != nil {
		r.Name = *edit.Name
	}
	p.resources[channelID] = r
	return nil
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, run *history.Run) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Save(ctx context.Context, guildID string, raw []byte) (string, error) {
	args := m.Called(ctx, guildID, raw)
	return args.String(0), args.Error(1)
}

const guildYAML = `server:
  name: Study Hall
  categories:
    Text:
      channels:
        general:
          name: general
          topic: Anything goes
        homework:
          name: homework
          position: 2
`
