package equilibrium

// Components finds the connected components implied by an edge set over
// nodes 0..n−1. Isolated nodes appear as singleton components. Components
// are returned in order of their smallest member; members within a
// component are in discovery (BFS) order.
//
// In a sampled equilibrium configuration every component is a clique, so
// the component sizes recover the sampled group partition.
//
// Time:   O(n + |E|).
// Memory: O(n + |E|) for adjacency, visited flags and output.
func Components(n int, edges []Edge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue := []int{s}
		seen[s] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
