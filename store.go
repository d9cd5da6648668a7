package sapling

// Store is the component store the render walker reads from. Lookups return
// false when the entity lacks the component; that is never an error.
//
// The ecs sub-package provides a Donburi-backed implementation; MapStore is
// an in-memory one.
type Store interface {
	Bounds(e Entity) (Rect, bool)
	SetBounds(e Entity, r Rect) bool
	Visibility(e Entity) (Visibility, bool)
	Point(e Entity) (Point, bool)
	// SetPoint writes the absolute-position cache. It returns false and
	// writes nothing when e has no Point component.
	SetPoint(e Entity, p Point) bool
}

// MapStore is a Store backed by plain maps. The zero value is not usable;
// create one with NewMapStore.
type MapStore struct {
	bounds     map[Entity]Rect
	visibility map[Entity]Visibility
	points     map[Entity]Point
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{
		bounds:     make(map[Entity]Rect),
		visibility: make(map[Entity]Visibility),
		points:     make(map[Entity]Point),
	}
}

// AddBounds attaches a Bounds component and an absolute Point cache to e.
func (s *MapStore) AddBounds(e Entity, r Rect) {
	s.bounds[e] = r
	if _, ok := s.points[e]; !ok {
		s.points[e] = Point{}
	}
}

// AddVisibility attaches a Visibility component to e.
func (s *MapStore) AddVisibility(e Entity, v Visibility) {
	s.visibility[e] = v
}

// AddPoint attaches a Point component to e without Bounds.
func (s *MapStore) AddPoint(e Entity) {
	s.points[e] = Point{}
}

// Remove drops every component of e.
func (s *MapStore) Remove(e Entity) {
	delete(s.bounds, e)
	delete(s.visibility, e)
	delete(s.points, e)
}

func (s *MapStore) Bounds(e Entity) (Rect, bool) {
	r, ok := s.bounds[e]
	return r, ok
}

func (s *MapStore) SetBounds(e Entity, r Rect) bool {
	if _, ok := s.bounds[e]; !ok {
		return false
	}
	s.bounds[e] = r
	return true
}

func (s *MapStore) Visibility(e Entity) (Visibility, bool) {
	v, ok := s.visibility[e]
	return v, ok
}

// SetVisibility replaces the Visibility of e, attaching the component if
// missing.
func (s *MapStore) SetVisibility(e Entity, v Visibility) {
	s.visibility[e] = v
}

func (s *MapStore) Point(e Entity) (Point, bool) {
	p, ok := s.points[e]
	return p, ok
}

func (s *MapStore) SetPoint(e Entity, p Point) bool {
	if _, ok := s.points[e]; !ok {
		return false
	}
	s.points[e] = p
	return true
}
