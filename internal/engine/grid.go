package engine

// RotateClockwise returns the grid rotated a quarter turn clockwise.
func RotateClockwise(g Grid) Grid {
	var result Grid
	for i := range Side {
		for j := range Side {
			result[j][Side-1-i] = g[i][j]
		}
	}
	return result
}

// Rotate applies n clockwise quarter turns. Negative n rotates counter-clockwise.
func Rotate(g Grid, n int) Grid {
	n = ((n % 4) + 4) % 4
	for range n {
		g = RotateClockwise(g)
	}
	return g
}

// compressRow shifts non-zero values left, keeping their order.
// Returns true if any value moved.
func compressRow(row *[Side]int) bool {
	insert := 0
	moved := false
	for x := range Side {
		if row[x] == 0 {
			continue
		}
		if x != insert {
			row[insert] = row[x]
			row[x] = 0
			moved = true
		}
		insert++
	}
	return moved
}

// mergeRow sums equal neighbours in one left-to-right pass. The merged cell
// is not compared again in the same pass, so [2 2 2 2] yields [4 0 4 0].
// Returns whether anything merged and the score gained.
func mergeRow(row *[Side]int) (bool, int) {
	merged := false
	gained := 0
	for i := 0; i < Side-1; i++ {
		if row[i] != 0 && row[i] == row[i+1] {
			row[i] += row[i+1]
			row[i+1] = 0
			gained += row[i]
			merged = true
		}
	}
	return merged, gained
}

// slideRowLeft runs compress, merge and (after a merge) compress again.
func slideRowLeft(row *[Side]int) (changed bool, gained int) {
	compressed := compressRow(row)
	merged, gained := mergeRow(row)
	if merged {
		compressRow(row)
	}
	return compressed || merged, gained
}

// SlideLeft slides every row of the grid to the left.
// Returns the new grid, score gained, and whether any row changed.
func SlideLeft(g Grid) (Grid, int, bool) {
	total := 0
	changed := false
	for y := range Side {
		rowChanged, gained := slideRowLeft(&g[y])
		total += gained
		if rowChanged {
			changed = true
		}
	}
	return g, total, changed
}

// Slide performs a move in dir by rotating onto the left orientation,
// sliding left and rotating back.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	turns := dir.quarterTurns()
	slid, gained, changed := SlideLeft(Rotate(g, turns))
	return Rotate(slid, (4-turns)%4), gained, changed
}

// CanMove reports whether any cell is empty or any horizontally or
// vertically adjacent pair holds equal values. It does not depend on a
// direction.
func CanMove(g Grid) bool {
	for y := range Side {
		for x := range Side {
			v := g[y][x]
			if v == 0 {
				return true
			}
			if y < Side-1 && g[y+1][x] == v {
				return true
			}
			if x < Side-1 && g[y][x+1] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for y := range Side {
		for x := range Side {
			if g[y][x] > maxVal {
				maxVal = g[y][x]
			}
		}
	}
	return maxVal
}

// EmptyCells returns the coordinates of every empty cell.
func EmptyCells(g Grid) []Tile {
	var cells []Tile
	for y := range Side {
		for x := range Side {
			if g[y][x] == 0 {
				cells = append(cells, Tile{X: x, Y: y})
			}
		}
	}
	return cells
}

// CountTiles returns the number of non-empty cells.
func CountTiles(g Grid) int {
	return Side*Side - len(EmptyCells(g))
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
