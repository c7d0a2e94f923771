package deps

import (
	"errors"
	"fmt"
	"sort"

	"wrapgen/internal/model"
)

// ErrBaseCycle is returned when classes are bases of each other.
var ErrBaseCycle = errors.New("inheritance cycle")

// Edge says that Before must be emitted ahead of After.
type Edge struct {
	Before *model.Class
	After  *model.Class
}

// Plan is a computed emission order.
type Plan struct {
	Order []*model.Class
	// Dropped lists requires edges ignored because they would close a cycle.
	Dropped []Edge
}

// Order computes the emission order. Bases always precede derived classes.
// Requires edges are added in class order and skipped when they would
// close a cycle. Among ready classes the earliest in input order goes first.
func Order(r *Relations) (*Plan, error) {
	n := len(r.classes)
	before := make([][]int, n)

	for i := range n {
		for j := range n {
			if r.baseOf[j][i] && i != j {
				before[i] = append(before[i], j)
			}
		}
	}

	if _, err := topoSort(n, func(i int) []int { return before[i] }); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBaseCycle, err)
	}

	plan := &Plan{}

	for i := range n {
		for j := range n {
			if !r.requires[i][j] || contains(before[i], j) {
				continue
			}

			// j before i closes a cycle iff i already precedes j.
			if reaches(before, j, i) {
				plan.Dropped = append(plan.Dropped, Edge{Before: r.classes[j], After: r.classes[i]})
				continue
			}

			before[i] = append(before[i], j)
		}
	}

	order, err := topoSort(n, func(i int) []int { return before[i] })
	if err != nil {
		return nil, err
	}

	plan.Order = make([]*model.Class, len(order))
	for k, i := range order {
		plan.Order[k] = r.classes[i]
	}

	return plan, nil
}

// reaches reports whether from transitively depends on target, i.e. target
// must already be emitted before from.
func reaches(before [][]int, from, target int) bool {
	seen := make([]bool, len(before))
	stack := []int{from}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range before[cur] {
			if d == target {
				return true
			}

			if !seen[d] {
				seen[d] = true
				stack = append(stack, d)
			}
		}
	}

	return false
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}

// topoSort returns indices in emission order.
//
// Nodes are by index. depsFn(i) yields indices that must be emitted before i.
//
// The result is deterministic: when multiple nodes are available, we pick the
// smallest index. If a cycle exists, an error is returned.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, errors.New("cycle detected")
	}

	return order, nil
}
