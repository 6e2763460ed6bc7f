package matching

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// MaxWeight returns a maximum-weight matching of the bipartite graph whose
// edge (i, j) weighs w.At(i, j). A nil matrix or an empty side yields an
// empty Result without error.
func MaxWeight(w mat.Matrix) (Result, error) {
	if w == nil {
		return Result{}, nil
	}
	r, c := w.Dims()
	if r == 0 || c == 0 {
		return Result{}, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := w.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Result{}, fmt.Errorf("MaxWeight: w[%d][%d]=%v: %w", i, j, v, ErrNonFiniteWeight)
			}
			if v < 0 {
				return Result{}, fmt.Errorf("MaxWeight: w[%d][%d]=%v: %w", i, j, v, ErrNegativeWeight)
			}
		}
	}

	// the algorithm assigns every row, so rows must be the smaller side
	transposed := r > c
	if transposed {
		w = w.T()
		r, c = c, r
	}
	cost := func(i, j int) float64 { return -w.At(i, j) }

	colOf := assign(r, c, cost)

	res := Result{Pairs: make([]Pair, 0, r)}
	for i, j := range colOf {
		p := Pair{Row: i, Col: j, Weight: w.At(i, j)}
		if transposed {
			p.Row, p.Col = j, i
		}
		res.Pairs = append(res.Pairs, p)
		res.Weight += p.Weight
	}
	if transposed {
		sort.Slice(res.Pairs, func(a, b int) bool { return res.Pairs[a].Row < res.Pairs[b].Row })
	}
	return res, nil
}

// assign solves the n×m (n ≤ m) minimum-cost assignment and returns, for
// each row, its column. Indices inside are 1-based; column 0 is a sentinel.
func assign(n, m int, cost func(i, j int) float64) []int {
	inf := math.Inf(1)
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1) // p[j] = row matched to column j
	way := make([]int, m+1)
	minv := make([]float64, m+1)
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = inf
			used[j] = false
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], inf, 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		// augment along the alternating path
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colOf := make([]int, n)
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			colOf[p[j]-1] = j - 1
		}
	}
	return colOf
}
