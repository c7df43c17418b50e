package sefe

import (
	"testing"

	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
)

func TestFromGraphsClassifiesColors(t *testing.T) {
	red := graph.New(4)
	red.Connect(0, 1)
	red.Connect(1, 2)
	red.Connect(0, 2)
	red.Connect(0, 3)
	blue := graph.New(4)
	blue.Connect(0, 1)
	blue.Connect(1, 2)
	blue.Connect(0, 2)
	blue.Connect(1, 3)

	b, err := FromGraphs(red, blue)
	if err != nil {
		t.Fatalf("FromGraphs() error = %v", err)
	}
	if got := b.EdgeCount(); got != 5 {
		t.Fatalf("EdgeCount() = %d, want 5", got)
	}
	want := map[[2]int]Color{
		{0, 1}: Black,
		{0, 2}: Black,
		{1, 2}: Black,
		{0, 3}: Red,
		{1, 3}: Blue,
	}
	for v := range b.VertexCount() {
		for _, a := range b.Arcs(v) {
			key := [2]int{v, a.To}
			if v > a.To {
				key = [2]int{a.To, v}
			}
			if want[key] != a.Color {
				t.Errorf("edge %v has color %v, want %v", key, a.Color, want[key])
			}
		}
	}
	if got := b.BlackDegree(0); got != 2 {
		t.Errorf("BlackDegree(0) = %d, want 2", got)
	}
	if got := b.BlackDegree(3); got != 0 {
		t.Errorf("BlackDegree(3) = %d, want 0", got)
	}
}

func TestFromGraphsRejectsSizeMismatch(t *testing.T) {
	red := graph.New(3)
	blue := graph.New(4)
	_, err := FromGraphs(red, blue)
	if err == nil {
		t.Fatal("FromGraphs() error = nil, want size mismatch")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestIntersectionIsBlackSubgraph(t *testing.T) {
	b := NewBicolored(4)
	b.Connect(0, 1, Black)
	b.Connect(1, 2, Black)
	b.Connect(0, 2, Black)
	b.Connect(0, 3, Red)
	b.Connect(1, 3, Blue)

	inter := b.Intersection()
	if got := inter.EdgeCount(); got != 3 {
		t.Errorf("intersection EdgeCount() = %d, want 3", got)
	}
	if inter.HasEdge(0, 3) || inter.HasEdge(1, 3) {
		t.Error("intersection contains a colored edge")
	}
}

func TestColorCovers(t *testing.T) {
	tests := []struct {
		attachment Color
		plain      Color
		want       bool
	}{
		{Red, Red, true},
		{Red, Blue, false},
		{Blue, Blue, true},
		{Black, Red, true},
		{Black, Blue, true},
		{RedAndBlue, Red, true},
		{RedAndBlue, Blue, true},
		{None, Red, false},
	}
	for _, tt := range tests {
		if got := tt.attachment.covers(tt.plain); got != tt.want {
			t.Errorf("%v.covers(%v) = %v, want %v", tt.attachment, tt.plain, got, tt.want)
		}
	}
}
