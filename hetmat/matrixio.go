// SPDX-License-Identifier: MIT

package hetmat

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hetmat/matrix"
)

// Format names a matrix file encoding by its file suffix.
type Format string

// Supported formats. Both start with a "shape <rows> <cols>" record.
// Sparse files then hold one "<row> <col> <value>" record per nonzero;
// dense files hold one record of <cols> values per row.
const (
	FormatInfer       Format = "infer"
	FormatSparseTSVGz Format = "sparse.tsv.gz"
	FormatSparseTSV   Format = "sparse.tsv"
	FormatTSVGz       Format = "tsv.gz"
	FormatTSV         Format = "tsv"
)

// DefaultFormats is the lookup precedence of FindReadMatrix.
var DefaultFormats = []Format{FormatSparseTSVGz, FormatSparseTSV, FormatTSVGz, FormatTSV}

func (f Format) sparse() bool     { return strings.HasPrefix(string(f), "sparse.") }
func (f Format) compressed() bool { return strings.HasSuffix(string(f), ".gz") }

// InferFormat returns the format whose suffix path carries.
func InferFormat(path string) (Format, error) {
	for _, f := range DefaultFormats {
		if strings.HasSuffix(path, "."+string(f)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: cannot infer format of %s", ErrUnknownFormat, path)
}

func checkFormat(path string, format Format) (Format, error) {
	if format == "" || format == FormatInfer {
		return InferFormat(path)
	}
	for _, f := range DefaultFormats {
		if f == format {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ReadMatrix reads the matrix at path. FormatInfer picks the format from the
// suffix. Sparse files yield *matrix.Sparse, dense files *matrix.Dense.
func ReadMatrix(path string, format Format) (matrix.Matrix, error) {
	format, err := checkFormat(path, format)
	if err != nil {
		return nil, err
	}
	rc, err := openTSV(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r := newTSVReader(rc)
	shape, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
	}
	rows, cols, err := parseShape(shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
	}

	var m matrix.Matrix
	if format.sparse() {
		m, err = readSparse(r, rows, cols)
	} else {
		m, err = readDense(r, rows, cols)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
	}

	return m, nil
}

func parseShape(rec []string) (int, int, error) {
	if len(rec) != 3 || rec[0] != "shape" {
		return 0, 0, errors.New("missing shape record")
	}
	r, err := strconv.Atoi(rec[1])
	if err != nil {
		return 0, 0, err
	}
	c, err := strconv.Atoi(rec[2])
	if err != nil {
		return 0, 0, err
	}

	return r, c, nil
}

func readSparse(r *csv.Reader, rows, cols int) (matrix.Matrix, error) {
	var entries []matrix.Triplet
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("want 3 fields, got %d", len(rec))
		}
		i, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, err
		}
		j, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, err
		}
		entries = append(entries, matrix.Triplet{I: i, J: j, V: v})
	}

	return matrix.NewSparse(rows, cols, entries)
}

func readDense(r *csv.Reader, rows, cols int) (matrix.Matrix, error) {
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		rec, err := r.Read()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(rec) != cols {
			return nil, fmt.Errorf("row %d: want %d fields, got %d", i, cols, len(rec))
		}
		for _, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			data = append(data, v)
		}
	}

	return matrix.NewDense(rows, cols, data)
}

// WriteMatrix writes m to path in format, replacing any existing file.
func WriteMatrix(path string, format Format, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	format, err := checkFormat(path, format)
	if err != nil {
		return err
	}

	return writeTSV(path, format.compressed(), false, func(w *csv.Writer) error {
		if err := w.Write([]string{"shape", strconv.Itoa(m.Rows()), strconv.Itoa(m.Cols())}); err != nil {
			return err
		}
		if format.sparse() {
			return writeSparse(w, m)
		}

		return writeDense(w, m)
	})
}

func writeSparse(w *csv.Writer, m matrix.Matrix) error {
	var err error
	m.DoNonZero(func(i, j int, v float64) {
		if err != nil {
			return
		}
		err = w.Write([]string{strconv.Itoa(i), strconv.Itoa(j), formatFloat(v)})
	})

	return err
}

func writeDense(w *csv.Writer, m matrix.Matrix) error {
	d := matrix.ToDense(m)
	rec := make([]string, d.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j, v := range d.RawRow(i) {
			rec[j] = formatFloat(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// FindReadMatrix reads base + "." + format for the first format whose file
// exists. No formats means DefaultFormats. ErrMatrixNotFound lists the
// formats tried.
func FindReadMatrix(base string, formats ...Format) (matrix.Matrix, Format, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	tried := make([]string, len(formats))
	for i, f := range formats {
		tried[i] = string(f)
		path := base + "." + string(f)
		if !isFile(path) {
			continue
		}
		m, err := ReadMatrix(path, f)

		return m, f, err
	}

	return nil, "", fmt.Errorf("%w: %s with any of: %s", ErrMatrixNotFound, base, strings.Join(tried, ", "))
}

func isFile(path string) bool {
	st, err := os.Stat(path)

	return err == nil && st.Mode().IsRegular()
}

func exists(path string) bool {
	_, err := os.Stat(path)

	return !errors.Is(err, fs.ErrNotExist)
}

func newTSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	return cr
}

type tsvFile struct {
	f  *os.File
	zr *gzip.Reader
}

func (t *tsvFile) Read(p []byte) (int, error) {
	if t.zr != nil {
		return t.zr.Read(p)
	}

	return t.f.Read(p)
}

func (t *tsvFile) Close() error {
	if t.zr != nil {
		t.zr.Close()
	}

	return t.f.Close()
}

// openTSV opens path, decompressing when it ends in ".gz".
func openTSV(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return &tsvFile{f: f}, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
	}

	return &tsvFile{f: f, zr: zr}, nil
}

// writeTSV creates path and hands a tab-separated writer to fill. With
// exclusive set an existing file yields ErrExists. A failed fill removes the
// partial file.
func writeTSV(path string, gz, exclusive bool, fill func(*csv.Writer) error) (err error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if exclusive {
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}

		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	var out io.Writer = f
	var zw *gzip.Writer
	if gz {
		zw = gzip.NewWriter(f)
		out = zw
	}
	w := csv.NewWriter(out)
	w.Comma = '\t'
	if err = fill(w); err != nil {
		return err
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}
	if zw != nil {
		return zw.Close()
	}

	return nil
}
