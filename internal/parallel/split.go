package parallel

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start, End int
}

// Len returns the number of rows in the band.
func (b Band) Len() int { return b.End - b.Start }

// SplitRows divides height rows into bands of at most rowsPerBand rows.
// A non-positive rowsPerBand yields a single band.
func SplitRows(height, rowsPerBand int) []Band {
	if height <= 0 {
		return nil
	}
	if rowsPerBand <= 0 || rowsPerBand >= height {
		return []Band{{Start: 0, End: height}}
	}
	bands := make([]Band, 0, (height+rowsPerBand-1)/rowsPerBand)
	for start := 0; start < height; start += rowsPerBand {
		bands = append(bands, Band{Start: start, End: min(start+rowsPerBand, height)})
	}
	return bands
}
