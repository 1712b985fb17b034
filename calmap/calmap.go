package calmap

import (
	"errors"
	"slices"
)

// Errors returned by table operations.
var (
	ErrLengthMismatch = errors.New("calmap: nominal and calibrated slices must have the same length")
	ErrEmptyTable     = errors.New("calmap: calibration table is empty")
	ErrOutOfRange     = errors.New("calmap: nominal value outside calibrated range")
)

// Point is one stored calibration entry: a nominal key and its signed
// error (nominal minus calibrated).
type Point struct {
	Nominal float64
	Error   float64
}

// Table maps nominal values to signed correction errors and answers
// interpolated lookups between its entries.
//
// Entries are kept sorted by nominal key in two parallel slices, giving
// O(log n) exact and neighbor lookup. The zero value is an empty, ready
// to use table. Table is not safe for concurrent use; guard it with a
// mutex if shared between goroutines.
type Table struct {
	keys []float64
	errs []float64
}

// New returns an empty calibration table.
func New() *Table {
	return &Table{}
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// IsEmpty reports whether the table holds no entries.
func (t *Table) IsEmpty() bool {
	return len(t.keys) == 0
}

// Range returns the smallest and largest stored nominal key.
// ok is false when the table is empty.
func (t *Table) Range() (min, max float64, ok bool) {
	if len(t.keys) == 0 {
		return 0, 0, false
	}

	return t.keys[0], t.keys[len(t.keys)-1], true
}

// Points returns a snapshot of all entries in ascending key order.
func (t *Table) Points() []Point {
	out := make([]Point, len(t.keys))
	for i := range t.keys {
		out[i] = Point{Nominal: t.keys[i], Error: t.errs[i]}
	}

	return out
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	return &Table{
		keys: slices.Clone(t.keys),
		errs: slices.Clone(t.errs),
	}
}

// insert stores e under key, overwriting an existing entry when
// overwrite is true and leaving it untouched otherwise.
func (t *Table) insert(key, e float64, overwrite bool) {
	idx, found := slices.BinarySearch(t.keys, key)
	if found {
		if overwrite {
			t.errs[idx] = e
		}

		return
	}

	t.keys = slices.Insert(t.keys, idx, key)
	t.errs = slices.Insert(t.errs, idx, e)
}

// AddPoint stores the error nominal-calibrated under the nominal key,
// overwriting any existing entry for that exact key.
//
// Keys are compared with exact float64 equality. NaN keys are not
// defended against and leave the ordering undefined.
func (t *Table) AddPoint(nominal, calibrated float64) {
	t.insert(nominal, nominal-calibrated, true)
}

// AddPoints applies AddPoint positionally across two equal-length
// slices. It returns ErrLengthMismatch, without touching the table,
// when the slice lengths differ. Duplicate nominal keys within the
// batch resolve to the last occurrence.
func (t *Table) AddPoints(nominals, calibrateds []float64) error {
	if len(nominals) != len(calibrateds) {
		return ErrLengthMismatch
	}

	for i := range nominals {
		t.AddPoint(nominals[i], calibrateds[i])
	}

	return nil
}

// SetMap replaces the entire table with the given key to error entries.
// Values are stored as-is: they are already-computed errors, not
// calibrated readings. An empty or nil map empties the table.
func (t *Table) SetMap(entries map[float64]float64) {
	t.keys = make([]float64, 0, len(entries))
	for k := range entries {
		t.keys = append(t.keys, k)
	}

	slices.Sort(t.keys)

	t.errs = make([]float64, len(t.keys))
	for i, k := range t.keys {
		t.errs[i] = entries[k]
	}
}

// AppendMap merges the given key to error entries into the table.
// Keys already present keep their stored error; only absent keys are
// inserted. Note the asymmetry with AddPoint, which always overwrites.
func (t *Table) AppendMap(entries map[float64]float64) {
	for k, e := range entries {
		t.insert(k, e, false)
	}
}

// ErrorValue returns the signed error for the given nominal value.
//
// A nominal exactly matching a stored key returns that key's error with
// no interpolation arithmetic. Any other nominal must fall strictly
// between two stored keys and is linearly interpolated between them.
// Returns ErrEmptyTable on an empty table and ErrOutOfRange when no
// bracketing pair exists (nominal below the smallest key or above the
// largest, without an exact match).
func (t *Table) ErrorValue(nominal float64) (float64, error) {
	if len(t.keys) == 0 {
		return 0, ErrEmptyTable
	}

	idx, found := slices.BinarySearch(t.keys, nominal)
	if found {
		return t.errs[idx], nil
	}

	// idx is the insertion point: keys[idx-1] < nominal < keys[idx].
	if idx == 0 || idx == len(t.keys) {
		return 0, ErrOutOfRange
	}

	k1, e1 := t.keys[idx-1], t.errs[idx-1]
	k2, e2 := t.keys[idx], t.errs[idx]

	return e1 + (nominal-k1)*(e2-e1)/(k2-k1), nil
}

// CorrectedPosition returns nominal minus its interpolated error, the
// best estimate of the true position for the given nominal value. It
// fails exactly when ErrorValue fails.
func (t *Table) CorrectedPosition(nominal float64) (float64, error) {
	e, err := t.ErrorValue(nominal)
	if err != nil {
		return 0, err
	}

	return nominal - e, nil
}
