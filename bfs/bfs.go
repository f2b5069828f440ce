package bfs

// Path runs a breadth-first search from start over the implicit graph
// described by successors, stopping at the first node for which goal
// returns true.
//
// It returns the discovered path, start and goal node included, and
// true on success. When no goal node is reachable it returns nil and
// false. Because BFS expands nodes in non-decreasing distance from
// start, the returned path has the minimum possible number of edges.
//
// The successor function is consulted at most once per discovered node;
// nodes it yields that were already seen are skipped, so cyclic graphs
// are handled without bookkeeping on the caller's side.
func Path[N comparable](start N, successors func(N) []N, goal func(N) bool) ([]N, bool) {
	if goal(start) {
		return []N{start}, true
	}

	// parent doubles as the visited set: a node is present iff seen.
	parent := map[N]N{start: start}
	queue := []N{start}

	for head := 0; head < len(queue); head++ {
		node := queue[head]
		for _, next := range successors(node) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = node
			if goal(next) {
				return rebuild(parent, start, next), true
			}
			queue = append(queue, next)
		}
	}

	return nil, false
}

// rebuild walks the parent links from end back to start and reverses
// the result into start→end order.
func rebuild[N comparable](parent map[N]N, start, end N) []N {
	path := []N{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
