package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pyweop/polypulse/internal/domain/models"
)

// AggsTable renders aggregate bars as an aligned table with columns Date,
// Open, High, Low, Close, Volume. Timestamps become UTC calendar dates,
// numbers are comma-grouped with two decimals. Rows keep the provider's
// order.
func AggsTable(resp *models.AggregateResponse) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "Date\tOpen\tHigh\tLow\tClose\tVolume")
	for _, bar := range resp.Results {
		date := time.UnixMilli(bar.Timestamp).UTC().Format("2006-01-02")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			date, comma(bar.Open), comma(bar.High), comma(bar.Low), comma(bar.Close), comma(bar.Volume))
	}
	_ = w.Flush()

	return buf.String()
}

// comma formats v with thousands separators and two decimals:
// 1234567.891 becomes "1,234,567.89".
func comma(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
