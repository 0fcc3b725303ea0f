package alphacut

import "github.com/linstald/master-thesis-scripts/necklace"

// shape is the structural case a necklace is solved by.
type shape int

const (
	shapeEmpty shape = iota
	shapeNeighbouringIntervals
	shapeMultiComponent
	shapeLastInterval
	shapeFirstInterval
	shapeEmbracing
	shapeIrreducible
)

func (sh shape) String() string {
	switch sh {
	case shapeEmpty:
		return "empty"
	case shapeNeighbouringIntervals:
		return "neighbouring-intervals"
	case shapeMultiComponent:
		return "multi-component"
	case shapeLastInterval:
		return "last-interval"
	case shapeFirstInterval:
		return "first-interval"
	case shapeEmbracing:
		return "embracing"
	case shapeIrreducible:
		return "irreducible"
	}
	return "unknown"
}

// classify returns the first matching shape in priority order.
func classify(nk *necklace.Necklace) shape {
	if nk.NumColours() == 0 {
		return shapeEmpty
	}
	if _, ok := nk.NeighbouringIntervals(); ok {
		return shapeNeighbouringIntervals
	}
	if len(nk.MultiComponentColours()) > 0 {
		return shapeMultiComponent
	}

	size := nk.Size()
	first, last := nk.ComponentColour(0), nk.ComponentColour(size-1)
	switch {
	case nk.Components(last) == 1:
		return shapeLastInterval
	case nk.Components(first) == 1:
		return shapeFirstInterval
	case first == last:
		return shapeEmbracing
	}
	return shapeIrreducible
}
