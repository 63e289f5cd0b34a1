// Package resolve canonicalizes equivalent CURIEs across agents by
// union-finding alias bags. The canonical representative of a bag is its
// first-inserted member, not an arbitrary union-find root, so the result
// is deterministic given the agents' input order.
package resolve

// Resolver accumulates alias bags and, once Build is called, resolves any
// CURIE seen in any bag to its bag's canonical representative.
type Resolver struct {
	uf        *unionFind
	firstSeen map[string]int
	order     int
}

// NewResolver returns an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{uf: newUnionFind(), firstSeen: map[string]int{}}
}

// AddBag records curies as mutually aliased: curies[0] is unioned with
// every other member. Order within and across calls determines which
// member eventually wins as canonical.
func (r *Resolver) AddBag(curies []string) {
	var first string
	for i, c := range curies {
		if c == "" {
			continue
		}
		if _, seen := r.firstSeen[c]; !seen {
			r.firstSeen[c] = r.order
			r.order++
		}
		r.uf.add(c)
		if i == 0 || first == "" {
			first = c
			continue
		}
		r.uf.union(first, c)
	}
}

// Build resolves every unioned bag to a map from each member CURIE to the
// canonical CURIE of its bag: the member with the smallest firstSeen
// insertion order.
func (r *Resolver) Build() map[string]string {
	groups := map[string][]string{}
	for id := range r.uf.parent {
		root := r.uf.find(id)
		groups[root] = append(groups[root], id)
	}

	canonical := map[string]string{}
	for _, members := range groups {
		best := members[0]
		for _, m := range members[1:] {
			if r.firstSeen[m] < r.firstSeen[best] {
				best = m
			}
		}
		for _, m := range members {
			canonical[m] = best
		}
	}
	return canonical
}

// Canonicalizer resolves a CURIE to its canonical form.
type Canonicalizer map[string]string

// Canonicalize returns (canonical, true) for a CURIE seen in some bag, or
// ("", false) if the CURIE was never registered.
func (c Canonicalizer) Canonicalize(curie string) (string, bool) {
	canon, ok := c[curie]
	return canon, ok
}
