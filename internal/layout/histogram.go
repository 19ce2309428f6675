package layout

// Histograms holds, for every cell, the length of the run of Free cells in
// its column that ends at that cell. Row y is the histogram fed to FindLargest
// for row number y+1.
type Histograms [][]int

// BuildHistograms computes the running free-run heights of g.
//
// Each column is scanned top to bottom: an Occupied cell resets the run to 0,
// a Free cell extends it by one. The result has the same shape as g.
func BuildHistograms(g Grid) Histograms {
	if len(g) == 0 {
		return Histograms{}
	}

	hist := make(Histograms, len(g))
	var prev []int
	for y, cells := range g {
		row := make([]int, len(cells))
		for x, c := range cells {
			if c == Occupied {
				continue
			}
			row[x] = 1
			if prev != nil {
				row[x] += prev[x]
			}
		}
		hist[y] = row
		prev = row
	}
	return hist
}
