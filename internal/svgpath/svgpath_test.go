package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SectorPath(t *testing.T) {
	segments, err := Parse("M 21 21 L 41 21 A 20 20 0 0 0 21 1 Z")
	require.NoError(t, err)
	require.Len(t, segments, 4)

	assert.Equal(t, Segment{Command: 'M', Args: []float64{21, 21}}, segments[0])
	assert.Equal(t, Segment{Command: 'L', Args: []float64{41, 21}}, segments[1])
	assert.Equal(t, Segment{Command: 'A', Args: []float64{20, 20, 0, 0, 0, 21, 1}}, segments[2])
	assert.Equal(t, Segment{Command: 'Z'}, segments[3])
}

func TestParse_Numbers(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want []float64
	}{
		{"decimals", "M 1.5 -2.25", []float64{1.5, -2.25}},
		{"commas", "M1,2", []float64{1, 2}},
		{"sign separates", "M1-2", []float64{1, -2}},
		{"leading dot", "M.5 .25", []float64{0.5, 0.25}},
		{"exponent", "M1e2 3E-1", []float64{100, 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := Parse(tt.d)
			require.NoError(t, err)
			require.Len(t, segments, 1)
			assert.InDeltaSlice(t, tt.want, segments[0].Args, 1e-12)
		})
	}
}

func TestParse_ImplicitRepeat(t *testing.T) {
	segments, err := Parse("M 0 0 L 1 1 2 2 3 3")
	require.NoError(t, err)
	require.Len(t, segments, 4)
	for _, seg := range segments[1:] {
		assert.Equal(t, byte('L'), seg.Command)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		d    string
	}{
		{"no moveto", "L 1 1"},
		{"unknown command", "M 0 0 X 1"},
		{"missing argument", "M 0"},
		{"bad arc flag", "M 0 0 A 1 1 0 2 0 1 1"},
		{"missing arc flag", "M 0 0 A 1 1 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.d)
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("  ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestArcFlags(t *testing.T) {
	t.Run("compact flags", func(t *testing.T) {
		flags, err := ArcFlags("M0 0A10 10 0 10 5 5a1 1 0 0 1 2 2Z")
		require.NoError(t, err)
		assert.Equal(t, []ArcFlag{{LargeArc: true, Sweep: false}, {LargeArc: false, Sweep: true}}, flags)
	})

	t.Run("no arcs", func(t *testing.T) {
		flags, err := ArcFlags("M 0 0 L 1 1 Z")
		require.NoError(t, err)
		assert.Empty(t, flags)
	})

	t.Run("propagates parse errors", func(t *testing.T) {
		_, err := ArcFlags("Q")
		assert.Error(t, err)
	})
}
