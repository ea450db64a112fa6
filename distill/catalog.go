package distill

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// Catalog holds every unit instance a factory search may place in a round.
type Catalog struct {
	distances   []uint64
	numCombined int
	numLogical  int

	// physicalCombined[u] is combined template u on the physical qubit,
	// valid or not.
	physicalCombined []*Unit
	// physicalOnly holds the valid instances of purely physical templates.
	physicalOnly []*Unit
	// logical[d][u] is unit u (combined or purely logical) at distance
	// index d; a nil row means that distance is not offered.
	logical [][]*Unit

	// Distance index bounds per unit for the first and later rounds.
	minFirst, maxFirst []int
	minLater, maxLater []int
}

// NewCatalog instantiates templates against the physical qubit and every
// present logical patch. logical[i] is the patch at distances[i], or nil when
// that distance is not offered.
func NewCatalog(physical *qubit.PhysicalQubit, logical []*qec.LogicalPatch, distances []uint64, templates []*Template) (*Catalog, error) {
	if len(logical) != len(distances) {
		return nil, errors.Wrapf(ErrDistanceMismatch, "%d patches, %d distances", len(logical), len(distances))
	}

	var combined, logicalOnly, physicalOnly []*Template
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		switch t.Type {
		case Combined:
			combined = append(combined, t)
		case Logical:
			logicalOnly = append(logicalOnly, t)
		case Physical:
			physicalOnly = append(physicalOnly, t)
		}
	}

	c := &Catalog{
		distances:   distances,
		numCombined: len(combined),
		numLogical:  len(logicalOnly),
		logical:     make([][]*Unit, len(distances)),
	}

	physicalView := PhysicalView(physical)
	for _, t := range combined {
		c.physicalCombined = append(c.physicalCombined, NewUnit(t, physicalView))
	}
	for _, t := range physicalOnly {
		if u := NewUnit(t, physicalView); u.IsValid() {
			c.physicalOnly = append(c.physicalOnly, u)
		}
	}

	coded := append(slices.Clone(combined), logicalOnly...)
	for d, patch := range logical {
		if patch == nil {
			continue
		}
		view := LogicalView(patch)
		row := make([]*Unit, len(coded))
		for u, t := range coded {
			row[u] = NewUnit(t, view)
		}
		c.logical[d] = row
	}

	if c.NumUnits() == 0 {
		return nil, ErrEmptyCatalog
	}
	c.computeBounds()

	return c, nil
}

// NumUnits is the size of the unit index space.
func (c *Catalog) NumUnits() int {
	return c.numCombined + c.numLogical + len(c.physicalOnly)
}

// Distances returns the candidate code distances, indexed by distance index.
func (c *Catalog) Distances() []uint64 { return c.distances }

// Get returns the unit placed at a pipeline position for a distance index,
// or nil when that combination is not offered.
func (c *Catalog) Get(position, distanceIndex, unitIndex int) *Unit {
	if distanceIndex < 0 || distanceIndex >= len(c.distances) || unitIndex < 0 || unitIndex >= c.NumUnits() {
		return nil
	}
	coded := c.numCombined + c.numLogical

	if position == 0 && c.distances[distanceIndex] == 1 {
		switch {
		case unitIndex < c.numCombined:
			return c.physicalCombined[unitIndex]
		case unitIndex >= coded:
			return c.physicalOnly[unitIndex-coded]
		}
	}
	if unitIndex >= coded || c.logical[distanceIndex] == nil {
		return nil
	}

	return c.logical[distanceIndex][unitIndex]
}

// GetMany resolves one unit per round. ok is false when any round has no
// unit.
func (c *Catalog) GetMany(distanceIndexes, unitIndexes []int) (units []*Unit, ok bool) {
	units = make([]*Unit, len(unitIndexes))
	for i, u := range unitIndexes {
		if units[i] = c.Get(i, distanceIndexes[i], u); units[i] == nil {
			return nil, false
		}
	}

	return units, true
}

// MinDistanceIndexes returns, per round, the smallest distance index at which
// the round's unit is valid. It is the left corner of the search box.
func (c *Catalog) MinDistanceIndexes(unitIndexes []int) []int {
	return c.bounds(unitIndexes, c.minFirst, c.minLater)
}

// MaxDistanceIndexes returns, per round, the largest distance index at which
// the round's unit is valid. It is the right corner of the search box.
func (c *Catalog) MaxDistanceIndexes(unitIndexes []int) []int {
	return c.bounds(unitIndexes, c.maxFirst, c.maxLater)
}

func (c *Catalog) bounds(unitIndexes []int, first, later []int) []int {
	out := make([]int, len(unitIndexes))
	for i, u := range unitIndexes {
		if i == 0 {
			out[i] = first[u]
		} else {
			out[i] = later[u]
		}
	}

	return out
}

// IterateAll calls action with every numRounds-tuple of unit indexes in
// lexicographic order. The slice passed to action is reused between calls.
func (c *Catalog) IterateAll(numRounds int, action func(unitIndexes []int)) {
	n := c.NumUnits()
	if numRounds <= 0 || n == 0 {
		return
	}

	digits := make([]int, numRounds)
	for {
		action(digits)

		i := numRounds - 1
		for ; i >= 0; i-- {
			digits[i]++
			if digits[i] < n {
				break
			}
			digits[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// validAt reports whether a position may use the unit at a distance index.
// Distance 1 means physical qubits: it is only offered in the first round,
// and never as a logical patch.
func (c *Catalog) validAt(position, distanceIndex, unitIndex int) bool {
	if c.distances[distanceIndex] == 1 && position != 0 {
		return false
	}
	if c.distances[distanceIndex] == 1 && unitIndex >= c.numCombined && unitIndex < c.numCombined+c.numLogical {
		return false
	}
	u := c.Get(position, distanceIndex, unitIndex)

	return u != nil && u.IsValid()
}

func (c *Catalog) computeBounds() {
	n := c.NumUnits()
	c.minFirst, c.maxFirst = make([]int, n), make([]int, n)
	c.minLater, c.maxLater = make([]int, n), make([]int, n)

	for u := 0; u < n; u++ {
		c.minFirst[u], c.maxFirst[u] = c.span(0, u)
		c.minLater[u], c.maxLater[u] = c.span(1, u)
	}
}

// span returns the first and last valid distance index, or (len, -1) when
// the unit is never valid at that position.
func (c *Catalog) span(position, unitIndex int) (lo, hi int) {
	lo, hi = len(c.distances), -1
	for d := range c.distances {
		if !c.validAt(position, d, unitIndex) {
			continue
		}
		lo = min(lo, d)
		hi = d
	}

	return lo, hi
}
