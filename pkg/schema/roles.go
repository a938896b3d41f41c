// Package schema classifies seed columns into the roles the generation
// pipeline needs: time variables under the 24-hour budget, other numeric
// variables, categoricals to encode, and the two derived columns.
package schema

import (
	"fmt"
	"strconv"

	"github.com/veldt-labs/synthgen/pkg/apperrors"
	"github.com/veldt-labs/synthgen/pkg/dataset"
)

// Fixed column names the student lifestyle schema is defined by.
const (
	ColumnStudentID             = "Student_ID"
	ColumnStudyHours            = "Study_Hours_Per_Day"
	ColumnExtracurricularHours  = "Extracurricular_Hours_Per_Day"
	ColumnSleepHours            = "Sleep_Hours_Per_Day"
	ColumnSocialHours           = "Social_Hours_Per_Day"
	ColumnPhysicalActivityHours = "Physical_Activity_Hours_Per_Day"
	ColumnStressLevel           = "Stress_Level"
	ColumnGPA                   = "GPA"
	ColumnAge                   = "Age"
)

// TimeIndependentColumns are the four daily-hours variables sampled
// directly. Physical activity is excluded: it is the residual that closes
// the 24-hour budget and is never sampled.
var TimeIndependentColumns = []string{
	ColumnStudyHours,
	ColumnExtracurricularHours,
	ColumnSleepHours,
	ColumnSocialHours,
}

// Roles is the fixed per-run classification of the seed's columns.
type Roles struct {
	// Columns is the seed header in original order; generated chunks are
	// reordered to match it before writing.
	Columns []string

	Identifier      string
	TimeIndependent []string
	TimeResidual    string
	OtherNumeric    []string
	Categorical     []string
	DerivedLabel    string
}

// Modeled returns the columns included in the joint Gaussian, in the
// stable order used everywhere downstream: time-independent variables,
// then other numerics, then categoricals.
func (r *Roles) Modeled() []string {
	out := make([]string, 0, len(r.TimeIndependent)+len(r.OtherNumeric)+len(r.Categorical))
	out = append(out, r.TimeIndependent...)
	out = append(out, r.OtherNumeric...)
	out = append(out, r.Categorical...)
	return out
}

// Analyze classifies the seed's columns. The identifier, the four
// time-independent columns, the residual column, and the derived label
// must all exist by exact name; anything else is classified by probing
// whether every seed value parses as a number.
func Analyze(t *dataset.Table) (*Roles, error) {
	if t.NumRows() == 0 {
		return nil, apperrors.ErrEmptySeed
	}

	required := []string{ColumnStudentID, ColumnPhysicalActivityHours, ColumnStressLevel}
	required = append(required, TimeIndependentColumns...)
	for _, name := range required {
		if t.ColumnIndex(name) < 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingColumn, name)
		}
	}

	r := &Roles{
		Columns:         append([]string(nil), t.Columns...),
		Identifier:      ColumnStudentID,
		TimeIndependent: append([]string(nil), TimeIndependentColumns...),
		TimeResidual:    ColumnPhysicalActivityHours,
		DerivedLabel:    ColumnStressLevel,
	}

	special := map[string]bool{
		ColumnStudentID:             true,
		ColumnPhysicalActivityHours: true,
		ColumnStressLevel:           true,
	}
	for _, name := range TimeIndependentColumns {
		special[name] = true
	}

	for _, name := range t.Columns {
		if special[name] {
			continue
		}
		if columnIsNumeric(t, name) {
			r.OtherNumeric = append(r.OtherNumeric, name)
		} else {
			r.Categorical = append(r.Categorical, name)
		}
	}

	return r, nil
}

// columnIsNumeric reports whether every value in the column parses as a
// float. A single non-numeric cell makes the whole column categorical.
func columnIsNumeric(t *dataset.Table, name string) bool {
	idx := t.ColumnIndex(name)
	for _, row := range t.Rows {
		if _, err := strconv.ParseFloat(row[idx], 64); err != nil {
			return false
		}
	}
	return true
}
