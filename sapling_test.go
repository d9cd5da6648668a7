package sapling

import "testing"

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersect ---

func TestRectIntersect(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name  string
		other Rect
		want  Rect
		empty bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, Rect{50, 50, 60, 60}, false},
		{"fully contained", Rect{20, 20, 10, 10}, Rect{20, 20, 10, 10}, false},
		{"containing", Rect{0, 0, 200, 200}, base, false},
		{"adjacent right", Rect{110, 10, 50, 50}, Rect{110, 10, 0, 0}, true},
		{"disjoint", Rect{300, 300, 5, 5}, Rect{300, 300, 0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersect(tt.other)
			if got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
			if got.Empty() != tt.empty {
				t.Errorf("Empty() = %v, want %v", got.Empty(), tt.empty)
			}
		})
	}
}

func TestPointAddFloor(t *testing.T) {
	p := Point{1.5, -2.25}.Add(10, 20)
	if p != (Point{11.5, 17.75}) {
		t.Errorf("Add = %v", p)
	}
	if f := (Point{10.9, -0.1}).Floor(); f != (Point{10, -1}) {
		t.Errorf("Floor = %v, want {10 -1}", f)
	}
}

func TestVisibilityString(t *testing.T) {
	tests := []struct {
		v    Visibility
		want string
	}{
		{Visible, "visible"},
		{Hidden, "hidden"},
		{Collapsed, "collapsed"},
		{Visibility(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Visibility(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
