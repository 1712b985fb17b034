package calmap

// ErrorBlock evaluates ErrorValue for every nominal in nominals and
// writes the results into dst. Both slices must have the same length.
// The first failing sample aborts the evaluation and its error is
// returned; dst contents are undefined after a failure.
func (t *Table) ErrorBlock(dst, nominals []float64) error {
	if len(dst) != len(nominals) {
		return ErrLengthMismatch
	}

	for i, n := range nominals {
		e, err := t.ErrorValue(n)
		if err != nil {
			return err
		}

		dst[i] = e
	}

	return nil
}

// CorrectedBlock evaluates CorrectedPosition for every nominal in
// nominals and writes the results into dst. Same shape and failure
// rules as ErrorBlock.
func (t *Table) CorrectedBlock(dst, nominals []float64) error {
	err := t.ErrorBlock(dst, nominals)
	if err != nil {
		return err
	}

	for i, n := range nominals {
		dst[i] = n - dst[i]
	}

	return nil
}
