// SPDX-License-Identifier: MIT
//
// Package oracle finds component cuts of irreducible necklaces by colouring the
// edges of the colour graph red and green, expressed as a pseudo-boolean program
// and handed to the gophersat solver.
//
// Variables (1-based literals):
//
//	x_e      edge e is red (false: green)
//	r_v_i    both edges of traversal i of v are red
//	g_v_i    both edges of traversal i of v are green
//
// Constraints, with w0, w1 the sizes of the two components of v and T = total(v):
//
//	degree 4:  r_v_0 + g_v_0 + r_v_1 + g_v_1 = 1
//	           w0·r_v_0 <= α-1         w1·r_v_1 <= α-1
//	           w1·g_v_0 + T(1-g_v_0) >= α
//	           w0·g_v_1 + T(1-g_v_1) >= α
//	degree 2:  r_v_0 = g_v_0 = 0
//
// Every vertex has exactly one monochromatic traversal; the cut of a colour lies
// in the component of its other traversal. The program has two solutions: the
// first is excluded by a clause and the program solved a second time.
package oracle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/crillab/gophersat/solver"
	"go.uber.org/zap"

	"github.com/linstald/master-thesis-scripts/compcut"
	"github.com/linstald/master-thesis-scripts/necklace"
)

// MinColours is the smallest colour count the program is built for; smaller
// irreducible necklaces are enumerated instead.
const MinColours = 6

var (
	// ErrTooSmall indicates a necklace with fewer than MinColours colours.
	ErrTooSmall = errors.New("oracle: too few colours")

	// ErrUnsat indicates that no (second) colouring exists.
	ErrUnsat = errors.New("oracle: colouring program unsatisfiable")
)

// PB is the pseudo-boolean oracle. It is stateless and safe for concurrent use.
type PB struct {
	log *zap.Logger
}

// Option configures a PB.
type Option func(*PB)

// WithLogger sets the logger for program statistics (debug level).
func WithLogger(l *zap.Logger) Option {
	return func(p *PB) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a PB oracle.
func New(opts ...Option) *PB {
	p := &PB{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// traversalVars are the literals of one traversal.
type traversalVars struct {
	red, green int
	edges      [2]int
}

// program is the constraint set of one necklace and alpha vector.
type program struct {
	cg      *compcut.ColourGraph
	vertex  []string
	trav    map[string][]traversalVars
	nbEdges int
	constrs []solver.PBConstr
}

// ComponentCuts returns two sorted component cuts of the irreducible necklace
// nk, each extendable to an alpha cut or a negalpha cut.
//
// Errors:
//   - ErrTooSmall: fewer than MinColours colours.
//   - compcut.ErrNotIrreducible and traversal errors of the colour graph.
//   - ErrUnsat: the solver found no first or no second colouring.
func (p *PB) ComponentCuts(nk *necklace.Necklace, alpha necklace.Alpha) ([2][]int, error) {
	var res [2][]int
	if n := nk.NumColours(); n < MinColours {
		return res, fmt.Errorf("ComponentCuts: %d colours: %w", n, ErrTooSmall)
	}
	if err := nk.ValidateAlpha(alpha); err != nil {
		return res, fmt.Errorf("ComponentCuts: %w", err)
	}

	cg, err := compcut.NewColourGraph(nk)
	if err != nil {
		return res, fmt.Errorf("ComponentCuts: %w", err)
	}
	prog, err := build(cg, alpha)
	if err != nil {
		return res, fmt.Errorf("ComponentCuts: %w", err)
	}
	p.log.Debug("colouring program",
		zap.Int("n", nk.NumColours()),
		zap.Int("edges", prog.nbEdges),
		zap.Int("constraints", len(prog.constrs)))

	first, err := solve(prog.constrs)
	if err != nil {
		return res, fmt.Errorf("ComponentCuts: first colouring: %w", err)
	}
	res[0] = prog.cut(first)

	exclusion := make([]int, prog.nbEdges)
	for e := 0; e < prog.nbEdges; e++ {
		if first[e] {
			exclusion[e] = -(e + 1)
		} else {
			exclusion[e] = e + 1
		}
	}
	second, err := solve(append(prog.constrs, solver.PropClause(exclusion...)))
	if err != nil {
		return res, fmt.Errorf("ComponentCuts: second colouring: %w", err)
	}
	res[1] = prog.cut(second)

	return res, nil
}

func solve(constrs []solver.PBConstr) ([]bool, error) {
	s := solver.New(solver.ParsePBConstrs(constrs))
	if s.Solve() != solver.Sat {
		return nil, ErrUnsat
	}
	return s.Model(), nil
}

// build numbers the variables and emits every constraint.
func build(cg *compcut.ColourGraph, alpha necklace.Alpha) (*program, error) {
	prog := &program{
		cg:     cg,
		vertex: cg.Vertices(),
		trav:   make(map[string][]traversalVars),
	}

	edgeVar := make(map[string]int)
	for _, e := range cg.Edges() {
		prog.nbEdges++
		edgeVar[e.ID] = prog.nbEdges
	}

	next := prog.nbEdges
	for _, v := range prog.vertex {
		trav, err := cg.Traversals(v)
		if err != nil {
			return nil, err
		}
		vars := make([]traversalVars, len(trav))
		for i, t := range trav {
			next += 2
			tv := traversalVars{red: next - 1, green: next, edges: [2]int{edgeVar[t[0].ID], edgeVar[t[1].ID]}}
			vars[i] = tv
			prog.constrs = append(prog.constrs, linearize(tv)...)
		}
		prog.trav[v] = vars

		switch len(trav) {
		case 1:
			prog.constrs = append(prog.constrs, solver.PropClause(-vars[0].red), solver.PropClause(-vars[0].green))
		case 2:
			lits := []int{vars[0].red, vars[0].green, vars[1].red, vars[1].green}
			prog.constrs = append(prog.constrs, solver.Eq(lits, []int{1, 1, 1, 1}, 1)...)

			a := alpha[v]
			total := cg.Necklace().Total(v)
			w0, w1 := trav[0][0].WeightAt(v), trav[1][0].WeightAt(v)
			// the helpers take ownership of their slices
			prog.constrs = append(prog.constrs,
				solver.LtEq([]int{vars[0].red}, []int{w0}, a-1),
				solver.LtEq([]int{vars[1].red}, []int{w1}, a-1),
				solver.GtEq([]int{vars[0].green}, []int{w1 - total}, a-total),
				solver.GtEq([]int{vars[1].green}, []int{w0 - total}, a-total),
			)
		}
	}

	return prog, nil
}

// linearize ties r and g to the conjunctions over the traversal's two edges.
func linearize(tv traversalVars) []solver.PBConstr {
	x0, x1, r, g := tv.edges[0], tv.edges[1], tv.red, tv.green
	return []solver.PBConstr{
		solver.PropClause(-r, x0),
		solver.PropClause(-r, x1),
		solver.PropClause(r, -x0, -x1),
		solver.PropClause(-g, -x0),
		solver.PropClause(-g, -x1),
		solver.PropClause(g, x0, x1),
	}
}

// cut reads the component cut off a model.
func (prog *program) cut(model []bool) []int {
	value := func(lit int) bool { return lit-1 < len(model) && model[lit-1] }

	out := make([]int, 0, len(prog.vertex))
	for _, v := range prog.vertex {
		if v == compcut.Infinity {
			continue
		}
		for i, tv := range prog.trav[v] {
			if !value(tv.red) && !value(tv.green) {
				out = append(out, prog.cg.Component(v, i))
				break
			}
		}
	}
	sort.Ints(out)
	return out
}
