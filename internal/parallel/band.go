package parallel

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start int
	End   int
}

// Len returns the number of rows in the band.
func (b Band) Len() int {
	return b.End - b.Start
}

// SplitRows divides rows into at most parts contiguous bands of near-equal
// size. The first rows%parts bands get one extra row. It returns nil when
// there are no rows.
func SplitRows(rows, parts int) []Band {
	if rows <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > rows {
		parts = rows
	}

	bands := make([]Band, parts)
	size, extra := rows/parts, rows%parts
	start := 0
	for i := range bands {
		n := size
		if i < extra {
			n++
		}
		bands[i] = Band{Start: start, End: start + n}
		start += n
	}
	return bands
}
