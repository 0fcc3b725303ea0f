package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/linstald/master-thesis-scripts/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph(core.WithMultiEdges())
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("a"))
	require.NoError(s.g.AddVertex("a"))
	require.NoError(s.g.AddVertex("a"))
	require.Equal(1, s.g.VertexCount())
	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeAutoVertices() {
	require := require.New(s.T())
	eid, err := s.g.AddEdge("a", "b", core.WithIndex(3), core.WithHalfWeights(2, 5))
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasVertex("a") && s.g.HasVertex("b"))
	for _, v := range []string{"a", "b"} {
		es, err := s.g.IncidentEdges(v)
		require.NoError(err)
		require.Len(es, 1, "undirected edge must be visible from both ends")
	}

	e := s.g.Edges()[0]
	require.Equal(3, e.Index)
	require.Equal(2, e.WeightAt("a"))
	require.Equal(5, e.WeightAt("b"))
	require.Equal(0, e.WeightAt("z"))
	require.Equal("b", e.Other("a"))
}

func (s *GraphSuite) TestParallelEdgesAndDegree() {
	require := require.New(s.T())
	for i := 0; i < 3; i++ {
		_, err := s.g.AddEdge("a", "b")
		require.NoError(err)
	}
	_, err := s.g.AddEdge("b", "c")
	require.NoError(err)

	deg, err := s.g.Degree("b")
	require.NoError(err)
	require.Equal(4, deg)

	require.Equal(4, s.g.EdgeCount())

	_, err = s.g.Degree("zz")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestCutSize() {
	require := require.New(s.T())
	// walk graph of "abcab": a-b, b-c, c-a, a-b
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"a", "b"}} {
		_, err := s.g.AddEdge(p[0], p[1])
		require.NoError(err)
	}
	require.Equal(0, s.g.CutSize(map[string]bool{}))
	require.Equal(3, s.g.CutSize(map[string]bool{"a": true}))
	require.Equal(3, s.g.CutSize(map[string]bool{"b": true}))
	require.Equal(2, s.g.CutSize(map[string]bool{"c": true}))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestSimpleGraphRejections(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("a", "a")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = core.NewGraph(core.WithMultiEdges()).AddEdge("a", "a")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "a")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestIncidentEdgesSortedByIndex(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("x", "a", core.WithIndex(7))
	_, _ = g.AddEdge("x", "b", core.WithIndex(0))
	_, _ = g.AddEdge("c", "x", core.WithIndex(4))

	es, err := g.IncidentEdges("x")
	require.NoError(t, err)
	var got []int
	for _, e := range es {
		got = append(got, e.Index)
	}
	require.Equal(t, []int{0, 4, 7}, got)
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.AddEdge("a", "b")
		}()
	}
	wg.Wait()
	require.Equal(t, 16, g.EdgeCount())
	require.Len(t, g.Edges(), 16)
}
