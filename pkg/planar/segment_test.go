package planar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentsOfPureCycle(t *testing.T) {
	comp := component(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	cycle := NewCycle(comp)
	segments := SegmentsOf(comp, cycle)
	require.Empty(t, segments)
}

func TestSegmentsChord(t *testing.T) {
	// Pentagon with one chord between 0 and 2.
	comp := component(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})
	cycle := NewCycle(comp)
	require.Equal(t, 5, cycle.Len())

	segments := SegmentsOf(comp, cycle)
	require.Len(t, segments, 1)

	chord := segments[0]
	require.Len(t, chord.Attachments(), 2)
	require.True(t, chord.IsPath())

	// The chord's attachments resolve to the endpoints 0 and 2.
	endpoints := map[int]bool{}
	for _, a := range chord.Attachments() {
		require.True(t, chord.OnCycle(a))
		endpoints[chord.ComponentVertex(a)] = true
	}
	require.Equal(t, map[int]bool{0: true, 2: true}, endpoints)

	// A chord segment has no internal vertices: it is the cycle plus one edge.
	require.Equal(t, cycle.Len(), chord.Sub().VertexCount())
	require.Equal(t, cycle.Len()+1, chord.Sub().EdgeCount())
}

func TestSegmentsBridge(t *testing.T) {
	// Square with an apex joined to two opposite corners.
	comp := component(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {2, 4}})
	cycle := NewCycle(comp)
	require.Equal(t, 4, cycle.Len())

	segments := SegmentsOf(comp, cycle)
	require.Len(t, segments, 1)

	bridge := segments[0]
	require.Len(t, bridge.Attachments(), 2)
	require.True(t, bridge.IsPath())
	require.Equal(t, cycle.Len()+1, bridge.Sub().VertexCount())

	endpoints := map[int]bool{}
	for _, a := range bridge.Attachments() {
		endpoints[bridge.ComponentVertex(a)] = true
	}
	require.Equal(t, map[int]bool{0: true, 2: true}, endpoints)
}

func TestSegmentsK4SingleBridge(t *testing.T) {
	comp := component(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	cycle := NewCycle(comp)
	require.Equal(t, 3, cycle.Len())

	segments := SegmentsOf(comp, cycle)
	require.Len(t, segments, 1)

	seg := segments[0]
	require.Len(t, seg.Attachments(), 3)
	require.False(t, seg.IsPath())
}

func TestSegmentAttachmentLocalsAreCyclePositions(t *testing.T) {
	comp := component(6, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0},
		{0, 3}, {1, 4},
	})
	cycle := NewCycle(comp)
	require.Equal(t, 6, cycle.Len())

	for _, seg := range SegmentsOf(comp, cycle) {
		for _, a := range seg.Attachments() {
			p, ok := cycle.PositionOf(seg.ComponentVertex(a))
			require.True(t, ok)
			require.Equal(t, p, a)
		}
	}
}

func TestPathBetweenAttachments(t *testing.T) {
	comp := component(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {2, 4}})
	cycle := NewCycle(comp)
	segments := SegmentsOf(comp, cycle)
	require.Len(t, segments, 1)

	bridge := segments[0]
	a := bridge.Attachments()
	path := bridge.PathBetweenAttachments(a[0], a[1])

	// The path must run through the bridge interior, not along the cycle.
	require.Equal(t, []int{a[0], cycle.Len(), a[1]}, path)
	require.Equal(t, 4, bridge.ComponentVertex(path[1]))
}
