package field

// rank computes the rank of the matrix over Z_p by forward elimination.
// The rows are consumed.
func (f *PrimeField) rank(rows [][]uint64) int {
	n := len(rows)
	if n == 0 {
		return 0
	}
	m := len(rows[0])

	rank := 0
	for col := 0; col < m && rank < n; col++ {
		pivot := -1
		for i := rank; i < n; i++ {
			if rows[i][col] != 0 {
				pivot = i
				break
			}
		}

		if pivot == -1 {
			continue
		}

		rows[rank], rows[pivot] = rows[pivot], rows[rank]

		inv, _ := f.Inverse(rows[rank][col]) // non-zero pivot.
		for i := rank + 1; i < n; i++ {
			if rows[i][col] == 0 {
				continue
			}

			factor := f.Mul(rows[i][col], inv)
			for j := col; j < m; j++ {
				rows[i][j] = f.Sub(rows[i][j], f.Mul(factor, rows[rank][j]))
			}
		}

		rank++
	}

	return rank
}

// circulant returns the (len(b) x len(b)) matrix with rows[i][j] = b[(i+j) mod len(b)].
func circulant(b []uint64) [][]uint64 {
	n := len(b)

	rows := make([][]uint64, n)
	for i := range rows {
		rows[i] = make([]uint64, n)
		for j := range rows[i] {
			rows[i][j] = b[(i+j)%n]
		}
	}

	return rows
}
