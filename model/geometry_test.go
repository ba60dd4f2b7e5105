package model

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 3, Y: 4}

	if d := p1.Distance(p2); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Left() != 10 {
		t.Errorf("Expected Left 10, got %f", r.Left())
	}
	if r.Right() != 40 {
		t.Errorf("Expected Right 40, got %f", r.Right())
	}
	if r.Top() != 20 {
		t.Errorf("Expected Top 20, got %f", r.Top())
	}
	if r.Bottom() != 60 {
		t.Errorf("Expected Bottom 60, got %f", r.Bottom())
	}

	center := r.Center()
	if center.X != 25 || center.Y != 40 {
		t.Errorf("Expected center (25, 40), got (%f, %f)", center.X, center.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 50, Y: 25}, true},
		{"top-left corner", Point{X: 0, Y: 0}, true},
		{"bottom-right corner", Point{X: 100, Y: 50}, true},
		{"left of rect", Point{X: -1, Y: 25}, false},
		{"below rect", Point{X: 50, Y: 51}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)

	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Width != 30 || u.Height != 15 {
		t.Errorf("Expected union (0, 0, 30, 15), got (%f, %f, %f, %f)",
			u.X, u.Y, u.Width, u.Height)
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	moved := r.Translate(Point{X: 10, Y: 20})

	if moved.X != 11 || moved.Y != 22 {
		t.Errorf("Expected origin (11, 22), got (%f, %f)", moved.X, moved.Y)
	}
	if moved.Width != 3 || moved.Height != 4 {
		t.Errorf("Translate changed size: got (%f, %f)", moved.Width, moved.Height)
	}
}

func TestHorizontalDistance(t *testing.T) {
	r := NewRect(10, 0, 20, 10) // spans x in [10, 30]

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside span", 15, 0},
		{"at left edge", 10, 0},
		{"at right edge", 30, 0},
		{"left of span", 4, 6},
		{"right of span", 35, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HorizontalDistance(tt.x); got != tt.want {
				t.Errorf("HorizontalDistance(%f) = %f, want %f", tt.x, got, tt.want)
			}
		})
	}
}

func TestVerticalDistance(t *testing.T) {
	r := NewRect(0, 10, 10, 20) // spans y in [10, 30]

	if got := r.VerticalDistance(20); got != 0 {
		t.Errorf("Expected 0 inside span, got %f", got)
	}
	if got := r.VerticalDistance(5); got != 5 {
		t.Errorf("Expected 5 above span, got %f", got)
	}
	if got := r.VerticalDistance(33); got != 3 {
		t.Errorf("Expected 3 below span, got %f", got)
	}
}

func TestDistanceSquared(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"inside", Point{X: 5, Y: 5}, 0},
		{"on edge", Point{X: 10, Y: 5}, 0},
		{"right of rect", Point{X: 13, Y: 5}, 9},
		{"below rect", Point{X: 5, Y: 14}, 16},
		{"diagonal", Point{X: 13, Y: 14}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DistanceSquared(tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceSquared(%v) = %f, want %f", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !NewRect(0, 0, 0, 10).IsEmpty() {
		t.Error("Expected zero-width rect to be empty")
	}
	if NewRect(0, 0, 1, 1).IsEmpty() {
		t.Error("Expected 1x1 rect to be non-empty")
	}
}
