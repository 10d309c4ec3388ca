package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"NegativeRows", -1, 3},
		{"NegativeCols", 3, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols)
			if !errors.Is(err, grid.ErrInvalidDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrInvalidDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNew_AllEmpty checks that a fresh grid holds only Empty roles.
func TestNew_AllEmpty(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			role, err := g.Role(grid.Point{Row: r, Col: c})
			require.NoError(t, err)
			assert.Equal(t, grid.Empty, role)
		}
	}
	_, hasStart := g.Start()
	_, hasEnd := g.End()
	assert.False(t, hasStart)
	assert.False(t, hasEnd)
}

// TestContains checks the bounds predicate on a 2×3 grid.
func TestContains(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	valid := []grid.Point{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 0, Col: 2}}
	for _, p := range valid {
		if !g.Contains(p) {
			t.Errorf("Contains(%v) = false; want true", p)
		}
	}
	invalid := []grid.Point{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: -1}}
	for _, p := range invalid {
		if g.Contains(p) {
			t.Errorf("Contains(%v) = true; want false", p)
		}
	}
}

// TestRole_OutOfBounds verifies the Role bounds error.
func TestRole_OutOfBounds(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = g.Role(grid.Point{Row: 2, Col: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	err = g.SetRole(grid.Point{Row: 0, Col: -1}, grid.Barrier)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Role invariants
//----------------------------------------------------------------------------//

// TestSetRole_StartUniqueness: assigning a new Start clears the previous one,
// so at most one cell ever holds the role.
func TestSetRole_StartUniqueness(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	first := grid.Point{Row: 0, Col: 0}
	second := grid.Point{Row: 2, Col: 3}
	require.NoError(t, g.SetRole(first, grid.Start))
	require.NoError(t, g.SetRole(second, grid.Start))

	role, _ := g.Role(first)
	assert.Equal(t, grid.Empty, role, "previous Start must be cleared")
	role, _ = g.Role(second)
	assert.Equal(t, grid.Start, role)

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, second, start)
}

// TestSetRole_EndUniqueness mirrors the Start uniqueness rule for End.
func TestSetRole_EndUniqueness(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	first := grid.Point{Row: 1, Col: 1}
	second := grid.Point{Row: 3, Col: 0}
	require.NoError(t, g.SetRole(first, grid.End))
	require.NoError(t, g.SetRole(second, grid.End))

	role, _ := g.Role(first)
	assert.Equal(t, grid.Empty, role)
	end, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, second, end)
}

// TestSetRole_InvalidAssignment covers the fail-fast policy: a Barrier may
// not overwrite an endpoint, and the endpoints may not collide.
func TestSetRole_InvalidAssignment(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	start := grid.Point{Row: 0, Col: 0}
	end := grid.Point{Row: 3, Col: 3}
	require.NoError(t, g.SetRole(start, grid.Start))
	require.NoError(t, g.SetRole(end, grid.End))

	assert.ErrorIs(t, g.SetRole(start, grid.Barrier), grid.ErrInvalidAssignment)
	assert.ErrorIs(t, g.SetRole(end, grid.Barrier), grid.ErrInvalidAssignment)
	assert.ErrorIs(t, g.SetRole(end, grid.Start), grid.ErrInvalidAssignment)
	assert.ErrorIs(t, g.SetRole(start, grid.End), grid.ErrInvalidAssignment)

	// the failed assignments must not have disturbed the roles
	role, _ := g.Role(start)
	assert.Equal(t, grid.Start, role)
	role, _ = g.Role(end)
	assert.Equal(t, grid.End, role)
}

// TestSetRole_EmptyUnsetsEndpoint: clearing an endpoint cell forgets it.
func TestSetRole_EmptyUnsetsEndpoint(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	p := grid.Point{Row: 1, Col: 1}
	require.NoError(t, g.SetRole(p, grid.Start))
	require.NoError(t, g.SetRole(p, grid.Empty))

	_, ok := g.Start()
	assert.False(t, ok)
}

// TestSetRole_ReassignSameCell: re-picking the identical cell keeps it set.
func TestSetRole_ReassignSameCell(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	p := grid.Point{Row: 2, Col: 2}
	require.NoError(t, g.SetRole(p, grid.Start))
	require.NoError(t, g.SetRole(p, grid.Start))

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, p, start)
	role, _ := g.Role(p)
	assert.Equal(t, grid.Start, role)
}

//----------------------------------------------------------------------------//
// Neighbor orders
//----------------------------------------------------------------------------//

// TestNeighbors8_Order pins the breadth-first expansion order:
// up, down, left, right, then the four diagonals.
func TestNeighbors8_Order(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	got := g.Neighbors8(grid.Point{Row: 1, Col: 1})
	want := []grid.Point{
		{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2},
		{Row: 0, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors8(center) = %v; want %v", got, want)
	}

	// corner: only the in-bounds subset, same relative order
	got = g.Neighbors8(grid.Point{Row: 0, Col: 0})
	want = []grid.Point{{Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors8(corner) = %v; want %v", got, want)
	}
}

// TestNeighborsRaster_Order pins the relaxation (row-scan) order.
func TestNeighborsRaster_Order(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	got := g.NeighborsRaster(grid.Point{Row: 1, Col: 1})
	want := []grid.Point{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NeighborsRaster(center) = %v; want %v", got, want)
	}

	got = g.NeighborsRaster(grid.Point{Row: 0, Col: 0})
	want = []grid.Point{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NeighborsRaster(corner) = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// Bulk clearing
//----------------------------------------------------------------------------//

// TestClearRoles_Predicate resets only the matching roles.
func TestClearRoles_Predicate(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	require.NoError(t, g.SetRole(grid.Point{Row: 0, Col: 0}, grid.Start))
	require.NoError(t, g.SetRole(grid.Point{Row: 3, Col: 3}, grid.End))
	require.NoError(t, g.SetRole(grid.Point{Row: 1, Col: 1}, grid.Barrier))
	require.NoError(t, g.SetRole(grid.Point{Row: 2, Col: 2}, grid.Barrier))

	cleared := g.ClearRoles(func(_ grid.Point, role grid.CellRole) bool {
		return role == grid.Barrier
	})
	assert.Equal(t, 2, cleared)

	role, _ := g.Role(grid.Point{Row: 1, Col: 1})
	assert.Equal(t, grid.Empty, role)
	_, hasStart := g.Start()
	assert.True(t, hasStart, "predicate clearing barriers must keep the start")
}

// TestClearRoles_All: a nil predicate wipes everything, endpoints included.
func TestClearRoles_All(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	require.NoError(t, g.SetRole(grid.Point{Row: 0, Col: 0}, grid.Start))
	require.NoError(t, g.SetRole(grid.Point{Row: 3, Col: 3}, grid.End))
	require.NoError(t, g.SetRole(grid.Point{Row: 1, Col: 2}, grid.Barrier))

	cleared := g.ClearRoles(nil)
	assert.Equal(t, 3, cleared)

	_, hasStart := g.Start()
	_, hasEnd := g.End()
	assert.False(t, hasStart)
	assert.False(t, hasEnd)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			role, _ := g.Role(grid.Point{Row: r, Col: c})
			assert.Equal(t, grid.Empty, role)
		}
	}
}
