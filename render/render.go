package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
)

const infGlyph = "∞"

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	arrowColor  = color.New(color.FgGreen)
	methodColor = color.New(color.FgYellow)
	costColor   = color.New(color.FgMagenta)
	routeColor  = color.New(color.FgBlue)
	timeColor   = color.New(color.FgRed)
)

// CityName converts a 0-based city index to its letter name:
// 0→A, 25→Z, 26→AA, 27→AB, …
func CityName(i int) string {
	if i < 0 {
		return strconv.Itoa(i)
	}
	var buf []byte
	for i >= 0 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
		i = i/26 - 1
	}

	return string(buf)
}

// Path joins the city names of a tour with colored arrows.
// An empty tour renders as "-".
func Path(tour []int) string {
	if len(tour) == 0 {
		return "-"
	}
	names := make([]string, len(tour))
	for i, c := range tour {
		names[i] = CityName(c)
	}

	return strings.Join(names, arrowColor.Sprint(" → "))
}

// Cost formats a cost, spelling +Inf as ∞.
func Cost(c float64) string {
	if math.IsInf(c, 1) {
		return infGlyph
	}

	return strconv.FormatFloat(c, 'g', -1, 64)
}

// Matrix writes m as an aligned table with lettered headers.
func Matrix(w io.Writer, m matrix.Matrix) error {
	n, err := matrix.ValidateSquare(m)
	if err != nil {
		return err
	}

	if _, err = headerColor.Fprintln(w, "Cost matrix:"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	var (
		sb   strings.Builder
		i, j int
		v    float64
	)
	sb.WriteString("\t")
	for j = 0; j < n; j++ {
		sb.WriteString(CityName(j))
		sb.WriteString("\t")
	}
	sb.WriteString("\n")
	for i = 0; i < n; i++ {
		sb.WriteString(CityName(i))
		sb.WriteString("\t")
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			sb.WriteString(Cost(v))
			sb.WriteString("\t")
		}
		sb.WriteString("\n")
	}
	if _, err = io.WriteString(tw, sb.String()); err != nil {
		return err
	}

	return tw.Flush()
}

// Fallback writes the notice shown when a method was cut off after timeout
// and the greedy tour is reported instead.
func Fallback(w io.Writer, method tsp.Method, timeout time.Duration) error {
	_, err := fmt.Fprintf(w, "%s %s search stopped after %s, showing the greedy tour\n",
		timeColor.Sprint("Timed out:"), method, timeout)

	return err
}

// Solution writes a short colored report of one solve.
func Solution(w io.Writer, method tsp.Method, res tsp.Result, elapsed time.Duration) error {
	lines := []string{
		methodColor.Sprint("Method: ") + method.String(),
		costColor.Sprint("Best cost: ") + Cost(res.Cost),
		routeColor.Sprint("Route: ") + Path(res.Tour),
		timeColor.Sprint("Elapsed: ") + fmt.Sprintf("%.4fs", elapsed.Seconds()),
	}
	if method == tsp.MethodExact {
		lines = append(lines, fmt.Sprintf("Nodes: %d (pruned %d, complete tours %d)",
			res.Stats.Nodes, res.Stats.Pruned, res.Stats.Completed))
	}
	lines = append(lines, strings.Repeat("=", 50))

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")

	return err
}
