package plot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV exports all series in the x0,y0,x1,y1,... column layout
// understood by pgfplotstable. Shorter series pad their remaining rows
// with empty fields.
func (p *Plot) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 2*len(p.series))
	maxLen := 0
	for i, s := range p.series {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
		if len(s.x) > maxLen {
			maxLen = len(s.x)
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("plot: writing csv header: %w", err)
	}

	row := make([]string, 2*len(p.series))
	for r := 0; r < maxLen; r++ {
		for i, s := range p.series {
			if r < len(s.x) {
				row[2*i] = strconv.FormatFloat(s.x[r], 'g', -1, 64)
				row[2*i+1] = strconv.FormatFloat(s.y[r], 'g', -1, 64)
			} else {
				row[2*i], row[2*i+1] = "", ""
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("plot: writing csv row %d: %w", r, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
