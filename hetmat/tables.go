// SPDX-License-Identifier: MIT

package hetmat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/hetmat/dwpc"
	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/matrix"
	"github.com/katalvlaran/hetmat/significance"
	"go.uber.org/zap"
)

const (
	pathCountsDir      = "path-counts"
	adjustedDir        = "adjusted-path-counts"
	degreeGroupedDir   = "degree-grouped-permutations"
	tableExt           = ".tsv"
	compressedTableExt = ".tsv.gz"
)

var _ dwpc.Source = (*HetMat)(nil)

func metricDir(damping float64) string {
	return "dwpc-" + strconv.FormatFloat(damping, 'f', -1, 64)
}

func (h *HetMat) pathCountsBase(mp *hetnet.MetaPath, damping float64) string {
	return h.path(pathCountsDir, metricDir(damping), mp.Abbrev())
}

func (h *HetMat) degreeGroupsBase(mp *hetnet.MetaPath, damping float64) string {
	return h.path(adjustedDir, metricDir(damping), degreeGroupedDir, mp.Abbrev())
}

// findTable returns the existing compressed or plain table at base.
func findTable(base string) (string, bool) {
	for _, ext := range []string{compressedTableExt, tableExt} {
		if isFile(base + ext) {
			return base + ext, true
		}
	}

	return "", false
}

// createTable writes a new table at base in the configured compression.
// Either variant already present yields ErrExists.
func (h *HetMat) createTable(base string, fill func(*csv.Writer) error) (string, error) {
	if path, ok := findTable(base); ok {
		return "", fmt.Errorf("%w: %s", ErrExists, path)
	}
	path := base + tableExt
	if h.cfg.compress {
		path = base + compressedTableExt
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	return path, writeTSV(path, h.cfg.compress, true, fill)
}

// HasPathCounts reports whether the DWPC table of mp at damping exists.
func (h *HetMat) HasPathCounts(mp *hetnet.MetaPath, damping float64) bool {
	_, ok := findTable(h.pathCountsBase(mp, damping))

	return ok
}

// WritePathCounts stores the nonzero cells of res as (source, target, dwpc)
// rows.
//
// Errors: ErrExists.
func (h *HetMat) WritePathCounts(mp *hetnet.MetaPath, damping float64, res *dwpc.Result) error {
	if res == nil {
		return matrix.ErrNilMatrix
	}
	path, err := h.createTable(h.pathCountsBase(mp, damping), func(w *csv.Writer) error {
		if err := w.Write([]string{"source", "target", "dwpc"}); err != nil {
			return err
		}
		var err error
		res.Matrix.DoNonZero(func(i, j int, v float64) {
			if err == nil {
				err = w.Write([]string{res.Rows[i], res.Cols[j], formatFloat(v)})
			}
		})

		return err
	})
	if err != nil {
		return fmt.Errorf("hetmat: path counts %s: %w", mp.Abbrev(), err)
	}
	h.cfg.logger.Debug("path counts written", zap.String("metapath", mp.Abbrev()), zap.String("path", path))

	return nil
}

// ReadPathCounts loads the DWPC table of mp at damping into a matrix indexed
// by the node tables. The returned Category is empty; it is not stored.
func (h *HetMat) ReadPathCounts(mp *hetnet.MetaPath, damping float64) (*dwpc.Result, error) {
	base := h.pathCountsBase(mp, damping)
	path, ok := findTable(base)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatrixNotFound, base)
	}
	rows, err := h.NodeIdentifiers(mp.Source())
	if err != nil {
		return nil, err
	}
	cols, err := h.NodeIdentifiers(mp.Target())
	if err != nil {
		return nil, err
	}
	rowPos, colPos := index(rows), index(cols)

	var entries []matrix.Triplet
	err = readTable(path, 3, func(rec []string) error {
		i, ok := rowPos[rec[0]]
		if !ok {
			return fmt.Errorf("unknown source %q", rec[0])
		}
		j, ok := colPos[rec[1]]
		if !ok {
			return fmt.Errorf("unknown target %q", rec[1])
		}
		v, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return err
		}
		entries = append(entries, matrix.Triplet{I: i, J: j, V: v})

		return nil
	})
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewSparse(len(rows), len(cols), entries)
	if err != nil {
		return nil, err
	}

	return &dwpc.Result{Rows: rows, Cols: cols, Matrix: matrix.AutoConvert(m, h.cfg.denseThreshold)}, nil
}

// HasDegreeGroups reports whether degree-group summaries exist for mp or
// its inverse at damping.
func (h *HetMat) HasDegreeGroups(mp *hetnet.MetaPath, damping float64) bool {
	for _, p := range []*hetnet.MetaPath{mp, mp.Inverse()} {
		if _, ok := findTable(h.degreeGroupsBase(p, damping)); ok {
			return true
		}
	}

	return false
}

// WriteDegreeGroups stores degree-group summaries of mp at damping, one row
// per group ordered by degrees.
//
// Errors: ErrExists.
func (h *HetMat) WriteDegreeGroups(mp *hetnet.MetaPath, damping float64, summaries map[significance.DegreePair]significance.Summary) error {
	path, err := h.createTable(h.degreeGroupsBase(mp, damping), func(w *csv.Writer) error {
		if err := w.Write([]string{"source_degree", "target_degree", "n", "nnz", "mean", "sd"}); err != nil {
			return err
		}
		for _, k := range significance.SortedPairs(summaries) {
			s := summaries[k]
			rec := []string{
				strconv.Itoa(k.Source), strconv.Itoa(k.Target),
				strconv.Itoa(s.N), strconv.Itoa(s.NNZ),
				formatFloat(s.Mean), formatFloat(s.SD),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("hetmat: degree groups %s: %w", mp.Abbrev(), err)
	}
	h.cfg.logger.Debug("degree groups written",
		zap.String("metapath", mp.Abbrev()),
		zap.Int("groups", len(summaries)),
		zap.String("path", path),
	)

	return nil
}

// ReadDegreeGroups loads the summaries of mp at damping. When only the
// inverse metapath is stored its summaries are returned transposed.
func (h *HetMat) ReadDegreeGroups(mp *hetnet.MetaPath, damping float64) (map[significance.DegreePair]significance.Summary, error) {
	path, ok := findTable(h.degreeGroupsBase(mp, damping))
	transpose := false
	if !ok {
		path, ok = findTable(h.degreeGroupsBase(mp.Inverse(), damping))
		transpose = true
	}
	if !ok {
		return nil, fmt.Errorf("%w: degree groups %s", ErrMatrixNotFound, mp.Abbrev())
	}

	out := make(map[significance.DegreePair]significance.Summary)
	err := readTable(path, 6, func(rec []string) error {
		ints := make([]int, 4)
		for i := range ints {
			v, err := strconv.Atoi(rec[i])
			if err != nil {
				return err
			}
			ints[i] = v
		}
		mean, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return err
		}
		sd, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return err
		}
		out[significance.DegreePair{Source: ints[0], Target: ints[1]}] = significance.Summary{
			N: ints[2], NNZ: ints[3], Mean: mean, SD: sd,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if transpose {
		return significance.Transpose(out), nil
	}

	return out, nil
}

// readTable skips the header of the TSV at path and passes every record of
// width fields to fn.
func readTable(path string, width int, fn func([]string) error) error {
	rc, err := openTSV(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r := newTSVReader(rc)
	if _, err = r.Read(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
	}
	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err == nil && len(rec) != width {
			err = fmt.Errorf("want %d fields, got %d", width, len(rec))
		}
		if err == nil {
			err = fn(rec)
		}
		if err != nil {
			return fmt.Errorf("%w: %s:%d: %v", ErrMalformedFile, path, line, err)
		}
	}
}

func index(ids []string) map[string]int {
	out := make(map[string]int, len(ids))
	for i, id := range ids {
		out[id] = i
	}

	return out
}
