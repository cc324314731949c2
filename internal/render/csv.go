package render

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pyweop/polypulse/internal/domain/models"
)

// splitsHeader enforces the exact export column order; downstream consumers
// key on these names.
var splitsHeader = []string{"ticker", "execution_date", "split_from", "split_to", "adj_factor"}

// SplitsCSV renders split events as CSV with a fixed header row. The
// adjustment factor is written with ten decimal places; the raw ratio parts
// keep their shortest representation.
func SplitsCSV(splits []models.Split) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(splitsHeader); err != nil {
		return "", err
	}
	for _, s := range splits {
		rec := []string{
			s.Ticker,
			s.ExecutionDate,
			strconv.FormatFloat(s.SplitFrom, 'g', -1, 64),
			strconv.FormatFloat(s.SplitTo, 'g', -1, 64),
			strconv.FormatFloat(s.AdjustmentFactor(), 'f', 10, 64),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()

	return buf.String(), w.Error()
}
