package ecs

import (
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Component types the store reads and writes.
var (
	Bounds     = donburi.NewComponentType[sapling.Rect]()
	Visibility = donburi.NewComponentType[sapling.Visibility]()
	Position   = donburi.NewComponentType[sapling.Point]()
)

// InputEvent carries one input event queued by a SceneAdapter.
type InputEvent struct {
	Event sapling.Event
}

// InputEventType is the Donburi event type for InputEvent. Subscribe to it
// in your ECS systems and call ProcessEvents.
var InputEventType = events.NewEventType[InputEvent]()

// Store is a sapling.Store over a Donburi world. Entities that are no longer
// valid in the world have no components.
type Store struct {
	world donburi.World
}

// NewStore creates a Store over world.
func NewStore(world donburi.World) *Store {
	return &Store{world: world}
}

// World returns the underlying world.
func (s *Store) World() donburi.World {
	return s.world
}

// NewWidget creates an entity with Bounds, Position and a Visible
// Visibility component.
func (s *Store) NewWidget(bounds sapling.Rect) sapling.Entity {
	e := s.world.Create(Bounds, Position, Visibility)
	entry := s.world.Entry(e)
	Bounds.SetValue(entry, bounds)
	Visibility.SetValue(entry, sapling.Visible)
	return sapling.Entity(e)
}

// NewGroup creates an entity with only a Visibility component. Its children
// inherit its parent's offset.
func (s *Store) NewGroup() sapling.Entity {
	e := s.world.Create(Visibility)
	Visibility.SetValue(s.world.Entry(e), sapling.Visible)
	return sapling.Entity(e)
}

// Remove deletes e from the world.
func (s *Store) Remove(e sapling.Entity) {
	if s.world.Valid(donburi.Entity(e)) {
		s.world.Remove(donburi.Entity(e))
	}
}

func (s *Store) entry(e sapling.Entity) *donburi.Entry {
	de := donburi.Entity(e)
	if !s.world.Valid(de) {
		return nil
	}
	return s.world.Entry(de)
}

func (s *Store) Bounds(e sapling.Entity) (sapling.Rect, bool) {
	entry := s.entry(e)
	if entry == nil || !entry.HasComponent(Bounds) {
		return sapling.Rect{}, false
	}
	return Bounds.GetValue(entry), true
}

func (s *Store) SetBounds(e sapling.Entity, r sapling.Rect) bool {
	entry := s.entry(e)
	if entry == nil || !entry.HasComponent(Bounds) {
		return false
	}
	Bounds.SetValue(entry, r)
	return true
}

func (s *Store) Visibility(e sapling.Entity) (sapling.Visibility, bool) {
	entry := s.entry(e)
	if entry == nil || !entry.HasComponent(Visibility) {
		return sapling.Visible, false
	}
	return Visibility.GetValue(entry), true
}

// SetVisibility replaces e's Visibility. It returns false when e has no
// Visibility component.
func (s *Store) SetVisibility(e sapling.Entity, v sapling.Visibility) bool {
	entry := s.entry(e)
	if entry == nil || !entry.HasComponent(Visibility) {
		return false
	}
	Visibility.SetValue(entry, v)
	return true
}

func (s *Store) Point(e sapling.Entity) (sapling.Point, bool) {
	entry := s.entry(e)
	if entry == nil || !entry.HasComponent(Position) {
		return sapling.Point{}, false
	}
	return Position.GetValue(entry), true
}

func (s *Store) SetPoint(e sapling.Entity, p sapling.Point) bool {
	entry := s.entry(e)
	if entry == nil || !entry.HasComponent(Position) {
		return false
	}
	Position.SetValue(entry, p)
	return true
}

// EventBridge returns a SceneAdapter.OnEvents hook that publishes every
// queued input event to InputEventType on world. Events that are not
// sapling.Event values are skipped.
func EventBridge(world donburi.World) func(a *sapling.SceneAdapter, queued []any) {
	return func(_ *sapling.SceneAdapter, queued []any) {
		for _, q := range queued {
			if ev, ok := q.(sapling.Event); ok {
				InputEventType.Publish(world, InputEvent{Event: ev})
			}
		}
	}
}
