package matrix

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// NumPy .npy layout: magic, version, little-endian header length, a Python
// dict literal padded with spaces to a 64-byte boundary, then the raw data.
const (
	npyMagic    = "\x93NUMPY"
	npyAlign    = 64
	npyPrelude1 = len(npyMagic) + 2 + 2 // magic, version, uint16 length
)

var (
	npyDescrRe   = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)
	npyFortranRe = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	npyShapeRe   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// writeNPY emits a version 1.0 file holding d as a C-ordered '<f8' array.
func writeNPY(w io.Writer, d *Dense) error {
	dict := fmt.Sprintf("{'descr': '<f8', 'fortran_order': False, 'shape': (%d, %d), }", d.r, d.c)
	total := npyPrelude1 + len(dict) + 1
	if rem := total % npyAlign; rem != 0 {
		dict += strings.Repeat(" ", npyAlign-rem)
	}
	dict += "\n"

	var buf bytes.Buffer
	buf.WriteString(npyMagic)
	buf.Write([]byte{1, 0})
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(dict))); err != nil {
		return err
	}
	buf.WriteString(dict)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	return binary.Write(w, binary.LittleEndian, d.data)
}

// readNPY accepts versions 1.0 to 3.0 of a two-dimensional little-endian
// float64 array in either C or Fortran order.
func readNPY(r io.Reader) (*Dense, error) {
	prelude := make([]byte, len(npyMagic)+2)
	if _, err := io.ReadFull(r, prelude); err != nil {
		return nil, fmt.Errorf("npy prelude: %v: %w", err, ErrMalformedInput)
	}
	if string(prelude[:len(npyMagic)]) != npyMagic {
		return nil, fmt.Errorf("npy: bad magic: %w", ErrMalformedInput)
	}

	var headerLen int
	switch major := prelude[len(npyMagic)]; major {
	case 1:
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("npy header length: %v: %w", err, ErrMalformedInput)
		}
		headerLen = int(n)
	case 2, 3:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("npy header length: %v: %w", err, ErrMalformedInput)
		}
		headerLen = int(n)
	default:
		return nil, fmt.Errorf("npy: version %d: %w", major, ErrUnsupportedFormat)
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("npy header: %v: %w", err, ErrMalformedInput)
	}
	rows, cols, fortran, err := parseNPYHeader(string(header))
	if err != nil {
		return nil, err
	}

	data := make([]float64, rows*cols)
	if err = binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("npy data: %v: %w", err, ErrMalformedInput)
	}
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedInput)
	}
	if !fortran {
		copy(d.data, data)
		return d, nil
	}
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			d.data[i*cols+j] = data[j*rows+i]
		}
	}

	return d, nil
}

func parseNPYHeader(h string) (rows, cols int, fortran bool, err error) {
	descr := npyDescrRe.FindStringSubmatch(h)
	if descr == nil {
		return 0, 0, false, fmt.Errorf("npy: missing descr: %w", ErrMalformedInput)
	}
	if descr[1] != "<f8" {
		return 0, 0, false, fmt.Errorf("npy: dtype %q, want '<f8': %w", descr[1], ErrUnsupportedFormat)
	}
	if m := npyFortranRe.FindStringSubmatch(h); m != nil {
		fortran = m[1] == "True"
	}

	shape := npyShapeRe.FindStringSubmatch(h)
	if shape == nil {
		return 0, 0, false, fmt.Errorf("npy: missing shape: %w", ErrMalformedInput)
	}
	var dims []int
	for _, s := range strings.Split(shape[1], ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		v, perr := strconv.Atoi(s)
		if perr != nil || v <= 0 {
			return 0, 0, false, fmt.Errorf("npy: shape (%s): %w", shape[1], ErrMalformedInput)
		}
		dims = append(dims, v)
	}
	if len(dims) != 2 {
		return 0, 0, false, fmt.Errorf("npy: shape (%s) is not two-dimensional: %w", shape[1], ErrMalformedInput)
	}

	return dims[0], dims[1], fortran, nil
}
