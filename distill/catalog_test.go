// Package distill_test validates template binding and the unit catalog.
// Focus:
//  1. Physical/logical resource resolution per round.
//  2. Index layout: combined, purely logical, valid purely physical.
//  3. Distance-index bounds and the distance-1 rules of the first round.
package distill_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qre/distill"
	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// physicalOnly is a purely physical 15-to-1 variant.
func physicalOnly() *distill.Template {
	t := distill.RM15Prep()
	t.Name = "15-to-1 physical"
	t.Type = distill.Physical
	t.LogicalSpec = nil

	return t
}

// logicalOnly is a purely logical 15-to-1 variant.
func logicalOnly() *distill.Template {
	t := distill.RM15SpaceEfficient()
	t.Name = "15-to-1 logical"
	t.Type = distill.Logical
	t.PhysicalSpec = nil

	return t
}

func buildCatalog(t require.TestingT, q *qubit.PhysicalQubit, p *qec.Protocol, distances []uint64, templates []*distill.Template) *distill.Catalog {
	patches, err := qec.NewLogicalPatches(p, q, distances)
	require.NoError(t, err)
	c, err := distill.NewCatalog(q, patches, distances, templates)
	require.NoError(t, err)

	return c
}

// MajoranaCatalogSuite uses a qubit whose physical 15-to-1 instances are
// valid, so distance 1 is offered in the first round.
type MajoranaCatalogSuite struct {
	suite.Suite
	q       qubit.PhysicalQubit
	catalog *distill.Catalog
}

func (s *MajoranaCatalogSuite) SetupTest() {
	s.q = qubit.MajNsE4()
	s.catalog = buildCatalog(s.T(), &s.q, qec.SurfaceCodeMeasurementBased(), []uint64{1, 3, 5, 7},
		[]*distill.Template{distill.RM15Prep(), logicalOnly(), physicalOnly()})
}

// TestLayout checks the combined, logical, physical index order.
func (s *MajoranaCatalogSuite) TestLayout() {
	require.Equal(s.T(), 3, s.catalog.NumUnits())
	require.Equal(s.T(), "15-to-1 RM prep", s.catalog.Get(0, 1, 0).Name)
	require.Equal(s.T(), "15-to-1 logical", s.catalog.Get(0, 1, 1).Name)
	require.Equal(s.T(), "15-to-1 physical", s.catalog.Get(0, 0, 2).Name)
}

// TestGetResolvesPhysicalRowOnlyInFirstRound checks the distance-1 rule.
func (s *MajoranaCatalogSuite) TestGetResolvesPhysicalRowOnlyInFirstRound() {
	first := s.catalog.Get(0, 0, 0)
	require.NotNil(s.T(), first)
	require.Equal(s.T(), uint64(31), first.PhysicalQubits(0))
	require.Equal(s.T(), uint64(24*100), first.Duration(0))

	later := s.catalog.Get(1, 0, 0)
	require.NotNil(s.T(), later)
	require.Equal(s.T(), uint64(2*31), later.PhysicalQubits(1), "logical patch at distance 1 has 2 qubits")

	require.Nil(s.T(), s.catalog.Get(1, 0, 2), "physical units only run in the first round")
	require.Nil(s.T(), s.catalog.Get(0, 1, 2))
	require.Nil(s.T(), s.catalog.Get(0, 9, 0))
}

// TestBounds checks min/max distance indexes per round.
func (s *MajoranaCatalogSuite) TestBounds() {
	units := []int{0, 1, 2}
	require.Equal(s.T(), []int{0, 1, 4}, s.catalog.MinDistanceIndexes(units))
	require.Equal(s.T(), []int{3, 3, -1}, s.catalog.MaxDistanceIndexes(units))

	require.Equal(s.T(), []int{1, 1}, s.catalog.MinDistanceIndexes([]int{1, 0}))
	require.Equal(s.T(), []int{0, 4}, s.catalog.MinDistanceIndexes([]int{2, 2}), "physical unit only fits round one")
}

// TestGetMany resolves a full pipeline and rejects unavailable rounds.
func (s *MajoranaCatalogSuite) TestGetMany() {
	units, ok := s.catalog.GetMany([]int{0, 2}, []int{2, 0})
	require.True(s.T(), ok)
	require.Len(s.T(), units, 2)
	require.Equal(s.T(), uint64(1), units[0].CodeDistance)
	require.Equal(s.T(), uint64(5), units[1].CodeDistance)

	_, ok = s.catalog.GetMany([]int{0, 0}, []int{0, 2})
	require.False(s.T(), ok)
}

// TestIterateAll visits every tuple in lexicographic order.
func (s *MajoranaCatalogSuite) TestIterateAll() {
	var seen [][]int
	s.catalog.IterateAll(2, func(u []int) {
		seen = append(seen, append([]int(nil), u...))
	})
	require.Len(s.T(), seen, 9)
	require.Equal(s.T(), []int{0, 0}, seen[0])
	require.Equal(s.T(), []int{0, 1}, seen[1])
	require.Equal(s.T(), []int{2, 2}, seen[8])

	calls := 0
	s.catalog.IterateAll(0, func([]int) { calls++ })
	require.Zero(s.T(), calls)
}

func TestMajoranaCatalogSuite(t *testing.T) {
	suite.Run(t, new(MajoranaCatalogSuite))
}

func TestCatalog_GateBasedSkipsInvalidDistances(t *testing.T) {
	q := qubit.GateNsE3()
	c := buildCatalog(t, &q, qec.SurfaceCodeGateBased(), []uint64{1, 3, 5, 7},
		[]*distill.Template{distill.RM15Prep(), physicalOnly()})

	// The physical instance does not improve 1e-3, so it is filtered out.
	require.Equal(t, 1, c.NumUnits())
	require.Equal(t, []int{2, 2}, c.MinDistanceIndexes([]int{0, 0}))
	require.Equal(t, []int{3, 3}, c.MaxDistanceIndexes([]int{0, 0}))
	require.False(t, c.Get(0, 0, 0).IsValid())
	require.False(t, c.Get(0, 1, 0).IsValid())
	require.True(t, c.Get(0, 2, 0).IsValid())
}

func TestCatalog_MissingDistanceRow(t *testing.T) {
	q := qubit.GateNsE3()
	p := qec.SurfaceCodeGateBased()
	distances := []uint64{1, 3, 5, 7}
	patches, err := qec.NewLogicalPatches(p, &q, distances)
	require.NoError(t, err)
	patches[2] = nil

	c, err := distill.NewCatalog(&q, patches, distances, distill.DefaultTemplates())
	require.NoError(t, err)
	require.Nil(t, c.Get(1, 2, 0))
	require.Equal(t, []int{3}, c.MinDistanceIndexes([]int{0}))
	require.Equal(t, distances, c.Distances())
}

func TestCatalog_Errors(t *testing.T) {
	q := qubit.GateNsE3()
	_, err := distill.NewCatalog(&q, nil, []uint64{1}, distill.DefaultTemplates())
	require.ErrorIs(t, err, distill.ErrDistanceMismatch)

	_, err = distill.NewCatalog(&q, []*qec.LogicalPatch{nil}, []uint64{1}, []*distill.Template{physicalOnly()})
	require.ErrorIs(t, err, distill.ErrEmptyCatalog)

	bad := distill.RM15Prep()
	bad.OutputErrorRate = nil
	_, err = distill.NewCatalog(&q, []*qec.LogicalPatch{nil}, []uint64{1}, []*distill.Template{bad})
	require.ErrorIs(t, err, distill.ErrInvalidTemplate)
}
