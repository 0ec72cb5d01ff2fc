package bench

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// WriteTable prints the report header and one aligned row per size.
func WriteTable(w io.Writer, rep *Report) error {
	if rep == nil || len(rep.Rows) == 0 {
		return ErrEmptyReport
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Run %s (%d runs per method)\n", rep.RunID, rep.Runs)
	fmt.Fprintf(&sb, "Host: %s\n", rep.Host)
	sb.WriteString("Size\tLittle cost\tLittle time\tNearest cost\tNearest time\tDeviation (%)\tTimeouts\n")
	for _, r := range rep.Rows {
		fmt.Fprintf(&sb, "%d\t%s\t%.4f\t%.2f\t%.4f\t%s\t%d\n",
			r.Size, fixed2(r.ExactCost), r.ExactTime, r.GreedyCost, r.GreedyTime, fixed2(r.Deviation), r.TimedOut)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := io.WriteString(tw, sb.String()); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Benchmark time: %.4fs\n", rep.Elapsed.Seconds())

	return err
}

// fixed2 formats v with two decimals, or "-" when v is NaN.
func fixed2(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}

	return strconv.FormatFloat(v, 'f', 2, 64)
}
