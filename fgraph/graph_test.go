package fgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/elimgraph/fgraph"
	"github.com/katalvlaran/elimgraph/ordering"
	"github.com/katalvlaran/elimgraph/symbolic"
)

type GraphSuite struct {
	suite.Suite
	g *symbolic.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = newChain()
}

func (s *GraphSuite) TestAddIndexesEveryScopeKey() {
	require := require.New(s.T())
	slot := s.g.Add(symbolic.NewFactor(KeyA, KeyD))

	require.Equal(3, slot)
	require.Equal([]int{0, 3}, s.g.Factors(KeyA))
	require.Equal([]int{2, 3}, s.g.Factors(KeyD))
	require.Equal(4, s.g.Size())
	require.Equal(4, s.g.NrFactors())
	require.NoError(s.g.CheckIndex())
}

func (s *GraphSuite) TestAtBounds() {
	require := require.New(s.T())
	f, ok, err := s.g.At(1)
	require.NoError(err)
	require.True(ok)
	require.Equal([]string{KeyB, KeyC}, f.Keys())

	_, _, err = s.g.At(3)
	require.ErrorIs(err, fgraph.ErrIndexOutOfRange)
	_, _, err = s.g.At(-1)
	require.ErrorIs(err, fgraph.ErrIndexOutOfRange)
}

func (s *GraphSuite) TestFindAndRemovePrunesAllScopeKeys() {
	require := require.New(s.T())
	removed := s.g.FindAndRemoveFactors(KeyB)

	require.Len(removed, 2)
	require.Equal([]string{KeyA, KeyB}, removed[0].Keys())
	require.Equal([]string{KeyB, KeyC}, removed[1].Keys())
	require.Empty(s.g.Factors(KeyB))
	require.Empty(s.g.Factors(KeyA), "slot 0 must be pruned from A too")
	require.Equal([]int{2}, s.g.Factors(KeyC))

	// Slots stay in place as tombstones.
	require.Equal(3, s.g.Size())
	require.Equal(1, s.g.NrFactors())
	_, ok, err := s.g.At(0)
	require.NoError(err)
	require.False(ok)
	require.NoError(s.g.CheckIndex())

	require.Nil(s.g.FindAndRemoveFactors(KeyB), "second removal finds nothing")
}

func (s *GraphSuite) TestRemoveAndCombineFactors() {
	require := require.New(s.T())
	joint, err := s.g.RemoveAndCombineFactors(KeyB)
	require.NoError(err)
	require.Equal([]string{KeyA, KeyB, KeyC}, joint.Keys())
	require.Equal(1, s.g.NrFactors(), "combined factor is not reinserted")
	require.False(s.g.Has(KeyA))

	_, err = s.g.RemoveAndCombineFactors(KeyX)
	require.ErrorIs(err, fgraph.ErrUnknownVariable)
}

func (s *GraphSuite) TestClearResetsIndex() {
	require := require.New(s.T())
	s.g.Clear()
	require.Equal(0, s.g.Size())
	require.Equal(0, s.g.NrFactors())
	require.Empty(s.g.Keys())
	require.Empty(s.g.Factors(KeyA))

	require.Equal(0, s.g.Add(symbolic.NewFactor(KeyX)))
	require.NoError(s.g.CheckIndex())
}

func (s *GraphSuite) TestKeysAndScopes() {
	require := require.New(s.T())
	s.g.FindAndRemoveFactors(KeyA)
	require.Equal([]string{KeyB, KeyC, KeyD}, s.g.Keys())
	require.Equal([][]string{{KeyB, KeyC}, {KeyC, KeyD}}, s.g.Scopes())
}

func (s *GraphSuite) TestAllSkipsTombstones() {
	require := require.New(s.T())
	s.g.FindAndRemoveFactors(KeyA)

	var slots []int
	for i := range s.g.All() {
		slots = append(slots, i)
	}
	require.Equal([]int{1, 2}, slots)

	// Early break
	count := 0
	for range s.g.All() {
		count++
		break
	}
	require.Equal(1, count)
}

func (s *GraphSuite) TestOrderingDelegatesToOracle() {
	require := require.New(s.T())
	ord, err := s.g.Ordering()
	require.NoError(err)
	require.Equal(ordering.Ordering{KeyA, KeyB, KeyC, KeyD}, ord)

	reversed := ordering.OracleFunc(func(st ordering.Structure) (ordering.Ordering, error) {
		keys := st.Keys()
		out := make(ordering.Ordering, 0, len(keys))
		for i := len(keys) - 1; i >= 0; i-- {
			out = append(out, keys[i])
		}
		return out, nil
	})
	g := symbolic.NewGraph(fgraph.WithOracle(reversed))
	g.Add(symbolic.NewFactor(KeyA, KeyB))
	ord, err = g.Ordering()
	require.NoError(err)
	require.Equal(ordering.Ordering{KeyB, KeyA}, ord)
}

func (s *GraphSuite) TestNrFactorsTracksTombstones() {
	require := require.New(s.T())
	for _, key := range []string{KeyA, KeyC} {
		s.g.FindAndRemoveFactors(key)
		require.Equal(s.g.Size()-tombstones(s.g), s.g.NrFactors())
	}
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
