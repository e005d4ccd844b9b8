package grid

import "github.com/OffTheMark/AdventOfCode2024/geom"

// Regions finds the connected components ("regions") of stored cells.
// Two adjacent cells (under conn) belong to the same region when same
// reports true for their values; background cells never join a region.
//
// Regions are returned in row-major order of their first cell, and each
// region lists its points in BFS discovery order from that cell.
//
// Time:   O(N×d), where N = stored cells and d = 4 or 8.
// Memory: O(N) for the seen set and output.
func (g *Grid[V]) Regions(conn geom.Connectivity, same func(a, b V) bool) [][]geom.Point {
	seen := make(map[geom.Point]bool, len(g.cells))
	offsets := conn.Offsets()
	var regions [][]geom.Point

	for _, seed := range g.Sorted() {
		if seen[seed.Point] {
			continue
		}
		// BFS to collect the region
		queue := []geom.Point{seed.Point}
		seen[seed.Point] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uv := g.cells[u]
			for _, d := range offsets {
				v := u.Applying(d)
				if seen[v] {
					continue
				}
				vv, ok := g.cells[v]
				if !ok || !same(uv, vv) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}
