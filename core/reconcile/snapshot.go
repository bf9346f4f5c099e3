package reconcile

import (
	"context"
	"sort"
	"strings"
)

// pendingPrefix marks identifiers of resources that only exist in a plan.
const pendingPrefix = "pending:"

// Snapshot is the observed state of one guild for the duration of a pass.
// It is owned by a single pass and must not be shared between passes.
type Snapshot struct {
	// Guild is the guild handle.
	Guild Guild

	resources map[string]Resource
	order     []string
}

// NewSnapshot builds a snapshot from a guild and its resources.
func NewSnapshot(guild Guild, resources map[string]Resource) *Snapshot {
	s := &Snapshot{
		Guild:     guild,
		resources: make(map[string]Resource, len(resources)),
	}
	for id, r := range resources {
		if r.ID == "" {
			r.ID = id
		}
		s.resources[r.ID] = r
	}
	s.sortOrder()
	return s
}

// BuildSnapshot fetches the guild and all of its channels once.
// Errors from the platform are returned unchanged.
func BuildSnapshot(ctx context.Context, platform Platform, guildID string) (*Snapshot, error) {
	guild, err := platform.FetchGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}

	resources, err := platform.FetchChannels(ctx, guild)
	if err != nil {
		return nil, err
	}

	return NewSnapshot(*guild, resources), nil
}

// Len returns the number of resources.
func (s *Snapshot) Len() int {
	return len(s.resources)
}

// Get returns the resource with the given id.
func (s *Snapshot) Get(id string) (Resource, bool) {
	r, ok := s.resources[id]
	return r, ok
}

// Resources returns all resources in stable id order.
func (s *Snapshot) Resources() []Resource {
	out := make([]Resource, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.resources[id])
	}
	return out
}

// Add inserts or replaces a resource.
func (s *Snapshot) Add(r Resource) {
	if _, exists := s.resources[r.ID]; !exists {
		i := sort.Search(len(s.order), func(i int) bool { return !lessID(s.order[i], r.ID) })
		s.order = append(s.order, "")
		copy(s.order[i+1:], s.order[i:])
		s.order[i] = r.ID
	}
	s.resources[r.ID] = r
}

// clone returns an independent copy, used by the planner to record
// resources it intends to create.
func (s *Snapshot) clone() *Snapshot {
	c := &Snapshot{
		Guild:     s.Guild,
		resources: make(map[string]Resource, len(s.resources)),
		order:     append([]string(nil), s.order...),
	}
	for id, r := range s.resources {
		c.resources[id] = r
	}
	return c
}

func (s *Snapshot) sortOrder() {
	s.order = make([]string, 0, len(s.resources))
	for id := range s.resources {
		s.order = append(s.order, id)
	}
	sort.Slice(s.order, func(i, j int) bool { return lessID(s.order[i], s.order[j]) })
}

// lessID orders snowflakes numerically without parsing them: a shorter id is
// a smaller number. Pending ids sort after every real id.
func lessID(a, b string) bool {
	pa, pb := isPending(a), isPending(b)
	if pa != pb {
		return pb
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func isPending(id string) bool {
	return strings.HasPrefix(id, pendingPrefix)
}
