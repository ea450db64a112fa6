package factory

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// Frontier is a Pareto population of pipelines over (normalized qubits,
// duration). No member weakly dominates another.
type Frontier struct {
	items []*Pipeline
}

// dominates reports whether a is at least as good as b in both objectives.
func dominates(a, b *Pipeline) bool {
	return a.NormalizedQubits() <= b.NormalizedQubits() && a.Duration() <= b.Duration()
}

// Dominates reports whether some member weakly dominates p.
func (f *Frontier) Dominates(p *Pipeline) bool {
	return lo.ContainsBy(f.items, func(it *Pipeline) bool { return dominates(it, p) })
}

// Push adds p and drops the members it dominates. Callers check Dominates
// first; pushing a dominated pipeline breaks the frontier property.
func (f *Frontier) Push(p *Pipeline) {
	f.items = lo.Reject(f.items, func(it *Pipeline, _ int) bool { return dominates(p, it) })
	f.items = append(f.items, p)
}

// Len is the number of members.
func (f *Frontier) Len() int { return len(f.items) }

// Items returns the members sorted by normalized qubits, then duration.
func (f *Frontier) Items() []*Pipeline {
	out := slices.Clone(f.items)
	slices.SortFunc(out, func(a, b *Pipeline) int {
		if c := cmp.Compare(a.NormalizedQubits(), b.NormalizedQubits()); c != 0 {
			return c
		}

		return cmp.Compare(a.Duration(), b.Duration())
	})

	return out
}
