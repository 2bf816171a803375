package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/digraph/core"
)

type AdjacencyListSuite struct {
	suite.Suite
	g *core.AdjacencyList[string]
}

func (s *AdjacencyListSuite) SetupTest() {
	s.g = core.NewAdjacencyList("A", "B", "C", "D")
}

func (s *AdjacencyListSuite) TestConstruction() {
	require := require.New(s.T())
	require.Equal(4, s.g.Size())
	require.Equal(0, s.g.NumEdges())
	require.True(s.g.HasVertex("A"))
	require.False(s.g.HasVertex("Z"))

	// Duplicate keys collapse to a single vertex
	dup := core.NewAdjacencyList("X", "X", "Y")
	require.Equal(2, dup.Size())
}

func (s *AdjacencyListSuite) TestAddEdgeIdempotence() {
	require := require.New(s.T())

	added, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	require.True(added, "first add must mutate")

	added, err = s.g.AddEdge("A", "B")
	require.NoError(err)
	require.False(added, "repeat add must be a no-op")
	require.Equal(1, s.g.NumEdges())

	has, err := s.g.HasEdge("A", "B")
	require.NoError(err)
	require.True(has)

	// Direction matters
	has, err = s.g.HasEdge("B", "A")
	require.NoError(err)
	require.False(has)
}

func (s *AdjacencyListSuite) TestRemoveEdge() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B")

	removed, err := s.g.RemoveEdge("A", "B")
	require.NoError(err)
	require.True(removed, "first remove must mutate")

	removed, err = s.g.RemoveEdge("A", "B")
	require.NoError(err)
	require.False(removed, "repeat remove must be a no-op")
	require.Equal(0, s.g.NumEdges())
}

func (s *AdjacencyListSuite) TestNotFound() {
	require := require.New(s.T())

	_, err := s.g.AddEdge("A", "Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.AddEdge("Z", "A")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.RemoveEdge("Z", "A")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.HasEdge("A", "Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.OutDegree("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.InDegree("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.SuccessorSet("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.PredecessorSet("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.SuccessorIterator("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.PredecessorIterator("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *AdjacencyListSuite) TestBidirectionalConsistency() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B")
	_, _ = s.g.AddEdge("A", "C")
	_, _ = s.g.AddEdge("C", "B")

	// w ∈ successors(v) ⇔ v ∈ predecessors(w), for every pair
	for v := range s.g.KeySet() {
		succ, err := s.g.SuccessorSet(v)
		require.NoError(err)
		for w := range succ {
			pred, err := s.g.PredecessorSet(w)
			require.NoError(err)
			require.Contains(pred, v, "pred(%s) must mirror succ(%s)", w, v)
		}
	}

	// Removal keeps both sides in step
	_, _ = s.g.RemoveEdge("A", "B")
	pred, err := s.g.PredecessorSet("B")
	require.NoError(err)
	require.NotContains(pred, "A")
	require.Contains(pred, "C")
}

func (s *AdjacencyListSuite) TestDegrees() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B")
	_, _ = s.g.AddEdge("A", "C")
	_, _ = s.g.AddEdge("B", "C")

	out, err := s.g.OutDegree("A")
	require.NoError(err)
	require.Equal(2, out)

	in, err := s.g.InDegree("C")
	require.NoError(err)
	require.Equal(2, in)

	in, err = s.g.InDegree("A")
	require.NoError(err)
	require.Equal(0, in)
}

func (s *AdjacencyListSuite) TestSelfLoop() {
	require := require.New(s.T())

	added, err := s.g.AddEdge("A", "A")
	require.NoError(err)
	require.True(added)

	out, _ := s.g.OutDegree("A")
	in, _ := s.g.InDegree("A")
	require.Equal(1, out)
	require.Equal(1, in)

	succ, _ := s.g.SuccessorSet("A")
	require.Contains(succ, "A")
}

func (s *AdjacencyListSuite) TestIteratorOrderAndExhaustion() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "C")
	_, _ = s.g.AddEdge("A", "B")
	_, _ = s.g.AddEdge("A", "D")

	it, err := s.g.SuccessorIterator("A")
	require.NoError(err)

	// Insertion order, HasNext never consumes
	var got []string
	for it.HasNext() {
		require.True(it.HasNext(), "repeated HasNext must be harmless")
		k, err := it.Next()
		require.NoError(err)
		got = append(got, k)
	}
	require.Equal([]string{"C", "B", "D"}, got)

	_, err = it.Next()
	require.ErrorIs(err, core.ErrIteratorExhausted)
}

func (s *AdjacencyListSuite) TestIteratorSnapshotUnderMutation() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B")
	_, _ = s.g.AddEdge("A", "C")

	it, err := s.g.SuccessorIterator("A")
	require.NoError(err)

	// Mutation during iteration is out of contract; the only guarantee
	// is no corruption: the snapshot-bound iterator must finish its
	// captured length without panicking.
	_, _ = s.g.AddEdge("A", "D")

	var n int
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(err)
		n++
	}
	require.Equal(2, n, "snapshot length was two successors")
}

func (s *AdjacencyListSuite) TestKeySetIsCopy() {
	require := require.New(s.T())
	set := s.g.KeySet()
	require.Len(set, 4)

	delete(set, "A")
	require.True(s.g.HasVertex("A"), "mutating the returned set must not touch the graph")
}

func TestAdjacencyListSuite(t *testing.T) {
	suite.Run(t, new(AdjacencyListSuite))
}
