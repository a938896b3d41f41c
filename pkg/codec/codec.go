// Package codec maps categorical column values to dense integer codes and
// back. Codes exist so categoricals can participate in the joint Gaussian;
// decoding is the repair step that projects a noisy continuous sample back
// onto the seed's observed category set.
package codec

import (
	"fmt"

	"github.com/veldt-labs/synthgen/pkg/apperrors"
	"github.com/veldt-labs/synthgen/pkg/dataset"
)

type columnCodec struct {
	classes []string
	index   map[string]int
}

// Codec holds one encoding per categorical column. Codes are assigned in
// first-seen seed order and form a bijection with [0, Size(column)-1] for
// the life of the run.
type Codec struct {
	columns map[string]*columnCodec
}

// Build constructs encodings for the given columns from the values
// observed in the seed.
func Build(t *dataset.Table, columns []string) (*Codec, error) {
	c := &Codec{columns: make(map[string]*columnCodec, len(columns))}
	for _, name := range columns {
		values, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cc := &columnCodec{index: make(map[string]int)}
		for _, v := range values {
			if _, ok := cc.index[v]; !ok {
				cc.index[v] = len(cc.classes)
				cc.classes = append(cc.classes, v)
			}
		}
		c.columns[name] = cc
	}
	return c, nil
}

// Encode returns the code for a category value observed in the seed.
func (c *Codec) Encode(column, value string) (int, error) {
	cc, ok := c.columns[column]
	if !ok {
		return 0, fmt.Errorf("%w: no codec for column %s", apperrors.ErrMissingColumn, column)
	}
	code, ok := cc.index[value]
	if !ok {
		return 0, fmt.Errorf("column %s: value %q not observed in seed", column, value)
	}
	return code, nil
}

// Decode maps a code back to its category string. The code is clamped
// into [0, Size(column)-1] first, so sampling noise around the extreme
// codes can never address outside the category set.
func (c *Codec) Decode(column string, code int) string {
	cc, ok := c.columns[column]
	if !ok || len(cc.classes) == 0 {
		return ""
	}
	if code < 0 {
		code = 0
	}
	if code >= len(cc.classes) {
		code = len(cc.classes) - 1
	}
	return cc.classes[code]
}

// Size returns the number of distinct categories for the column.
func (c *Codec) Size(column string) int {
	cc, ok := c.columns[column]
	if !ok {
		return 0
	}
	return len(cc.classes)
}
