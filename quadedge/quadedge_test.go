package quadedge

import (
	"testing"

	"github.com/havralex/planekernel/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMesh() *Mesh {
	return FromPoints([]point.Point{
		point.FromInt64(0, 0),
		point.FromInt64(1, 0),
		point.FromInt64(1, 1),
	})
}

func TestEdge_AlgebraicIdentities(t *testing.T) {
	m := testMesh()
	e := m.MakeEdge(0, 1)

	assert.Equal(t, e, e.Sym().Sym(), "Sym is an involution")
	assert.Equal(t, e, e.Rot().InvRot(), "InvRot inverts Rot")
	assert.Equal(t, e.Sym(), e.Rot().Rot(), "two quarter turns reverse the edge")
	assert.Equal(t, 0, m.OrgIndex(e))
	assert.Equal(t, 1, m.DestIndex(e))
	assert.Equal(t, 1, m.OrgIndex(e.Sym()))
}

func TestMakeEdge_FreshRings(t *testing.T) {
	m := testMesh()
	e := m.MakeEdge(0, 1)

	assert.Equal(t, e, m.Onext(e), "an isolated edge is its own origin ring")
	assert.Equal(t, e.Sym(), m.Onext(e.Sym()))
	assert.Equal(t, e.Sym(), m.Lnext(e), "the only face loops through both directions")

	m.CheckInvariants()
}

func TestSplice_MergesAndSplitsRings(t *testing.T) {
	m := testMesh()
	a := m.MakeEdge(0, 1)
	b := m.MakeEdge(0, 2)

	m.Splice(a, b)
	assert.Equal(t, b, m.Onext(a), "splice merged the two origin rings")
	assert.Equal(t, a, m.Onext(b))

	m.Splice(a, b)
	assert.Equal(t, a, m.Onext(a), "splicing again splits the ring back apart")
	assert.Equal(t, b, m.Onext(b))

	m.CheckInvariants()
}

func TestConnect_CreatesEdgeBetweenDestAndOrg(t *testing.T) {
	m := testMesh()
	a := m.MakeEdge(0, 1)
	b := m.MakeEdge(1, 2)
	m.Splice(a.Sym(), b)

	c := m.Connect(b, a)
	assert.Equal(t, 2, m.OrgIndex(c), "connect runs from Dest(b)")
	assert.Equal(t, 0, m.DestIndex(c), "... to Org(a)")

	// The three edges now close a triangular left face.
	assert.Equal(t, b, m.Lnext(a))
	assert.Equal(t, c, m.Lnext(b))
	assert.Equal(t, a, m.Lnext(c))

	m.CheckInvariants()
}

func TestDeleteEdge_TombstonesAndUnlinks(t *testing.T) {
	m := testMesh()
	a := m.MakeEdge(0, 1)
	b := m.MakeEdge(1, 2)
	m.Splice(a.Sym(), b)
	c := m.Connect(b, a)

	require.True(t, m.Alive(c))
	m.DeleteEdge(c)
	assert.False(t, m.Alive(c))
	assert.True(t, m.Alive(a))
	assert.True(t, m.Alive(b))

	assert.Equal(t, a.Sym(), m.Onext(b), "b's origin ring no longer passes through the deleted edge")

	edges := m.PrimalEdges()
	assert.Len(t, edges, 4, "two live undirected edges, both directions each")

	m.CheckInvariants()
}
