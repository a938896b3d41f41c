package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/veldt-labs/synthgen/pkg/apperrors"
)

// Load reads the seed CSV at path into memory. The first record is the
// header; every data row must have the same width as the header. A seed
// with a header but no rows is rejected, since there is nothing to fit.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReader(f))
	reader.FieldsPerRecord = 0 // enforce header width on every row

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, apperrors.ErrEmptySeed)
	}

	t := &Table{
		Columns: records[0],
		Rows:    records[1:],
	}
	if t.NumRows() == 0 {
		return nil, fmt.Errorf("%s: %w", path, apperrors.ErrEmptySeed)
	}
	return t, nil
}
