// Package matrix - import/export of cost matrices.
//
// Supported encodings:
//   - FormatText   ("txt"): one row per line, whitespace-separated, %g values,
//     "inf" for missing edges;
//   - FormatCSV    ("csv"): one row per record, comma-separated, same values;
//   - FormatBinary ("bin"): gonum mat.Dense binary layout (header + raw float64);
//   - FormatNPY    ("npy"): NumPy .npy, a 2-D little-endian float64 array.
//
// Import only checks that the payload is a well-formed rectangle; whether the
// result is a usable cost matrix is decided by the consumer.
package matrix

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Format names a matrix encoding.
type Format string

const (
	FormatText   Format = "txt"
	FormatCSV    Format = "csv"
	FormatBinary Format = "bin"
	FormatNPY    Format = "npy"
)

// infToken is how +Inf is written by the text encoders.
const infToken = "inf"

// ParseFormat maps a user-facing name (case-insensitive, optional leading
// dot) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatText, FormatCSV, FormatBinary, FormatNPY:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
	}
}

// FormatFromPath derives the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Export writes m to w in the given format.
//
// Complexity: O(r*c).
func Export(w io.Writer, m Matrix, f Format) error {
	d, err := denseOf(m)
	if err != nil {
		return err
	}
	switch f {
	case FormatText:
		return writeText(w, d)
	case FormatCSV:
		return writeCSV(w, d)
	case FormatBinary:
		return writeBinary(w, d)
	case FormatNPY:
		return writeNPY(w, d)
	default:
		return fmt.Errorf("export %q: %w", f, ErrUnsupportedFormat)
	}
}

// Import reads a matrix in the given format from r.
//
// Complexity: O(r*c).
func Import(r io.Reader, f Format) (*Dense, error) {
	switch f {
	case FormatText:
		return readText(r)
	case FormatCSV:
		return readCSV(r)
	case FormatBinary:
		return readBinary(r)
	case FormatNPY:
		return readNPY(r)
	default:
		return nil, fmt.Errorf("import %q: %w", f, ErrUnsupportedFormat)
	}
}

// ExportFile writes m to path, choosing the format from the extension.
func ExportFile(path string, m Matrix) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err = Export(bw, m, f); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	return bw.Flush()
}

// ImportFile reads a matrix from path, choosing the format from the extension.
func ImportFile(path string) (*Dense, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	defer file.Close()

	d, err := Import(bufio.NewReader(file), f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}

	return d, nil
}

// denseOf returns m itself when it is a *Dense, otherwise a Dense copy.
func denseOf(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return nil, ErrNilMatrix
		}
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

func formatCell(v float64) string {
	if math.IsInf(v, 1) {
		return infToken
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseCell(s string, row, col int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("cell (%d,%d) %q: %w", row, col, s, ErrMalformedInput)
	}

	return v, nil
}

func writeText(w io.Writer, d *Dense) error {
	var (
		i, j int
		sb   strings.Builder
	)
	for i = 0; i < d.r; i++ {
		sb.Reset()
		for j = 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatCell(d.data[i*d.c+j]))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

func readText(r io.Reader) (*Dense, error) {
	var (
		rows [][]float64
		sc   = bufio.NewScanner(r)
	)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, s := range fields {
			v, err := parseCell(s, len(rows), j)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return rowsToDense(rows)
}

func writeCSV(w io.Writer, d *Dense) error {
	var (
		cw     = csv.NewWriter(w)
		record = make([]string, d.c)
		i, j   int
	)
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			record[j] = formatCell(d.data[i*d.c+j])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func readCSV(r io.Reader) (*Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%v: %w", perr, ErrMalformedInput)
		}
		return nil, err
	}
	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, s := range rec {
			if rows[i][j], err = parseCell(s, i, j); err != nil {
				return nil, err
			}
		}
	}

	return rowsToDense(rows)
}

func writeBinary(w io.Writer, d *Dense) error {
	gm := mat.NewDense(d.r, d.c, append([]float64(nil), d.data...))
	_, err := gm.MarshalBinaryTo(w)

	return err
}

func readBinary(r io.Reader) (*Dense, error) {
	var gm mat.Dense
	if _, err := gm.UnmarshalBinaryFrom(r); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedInput)
	}
	rows, cols := gm.Dims()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			d.data[i*cols+j] = gm.At(i, j)
		}
	}

	return d, nil
}

func rowsToDense(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty payload: %w", ErrMalformedInput)
	}
	d, err := FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedInput)
	}

	return d, nil
}
