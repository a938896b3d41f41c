// Package testhelpers provides shared seed fixtures for package tests.
package testhelpers

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/synthgen/pkg/dataset"
)

// SeedColumns is the canonical student lifestyle header used in tests.
var SeedColumns = []string{
	"Student_ID",
	"Study_Hours_Per_Day",
	"Extracurricular_Hours_Per_Day",
	"Sleep_Hours_Per_Day",
	"Social_Hours_Per_Day",
	"Physical_Activity_Hours_Per_Day",
	"GPA",
	"Age",
	"Gender",
	"Stress_Level",
}

// SeedRows are consistent records: the five time fields of every row sum
// to 24 and the stress label matches the derived rule.
var SeedRows = [][]string{
	{"1", "6.9", "3.8", "8.7", "2.8", "1.8", "2.99", "20", "Male", "Moderate"},
	{"2", "5.3", "3.5", "8.0", "4.2", "3.0", "2.75", "21", "Female", "Low"},
	{"3", "5.1", "3.9", "9.2", "1.2", "4.6", "2.67", "19", "Female", "Low"},
	{"4", "6.5", "2.1", "7.2", "1.7", "6.5", "2.88", "22", "Male", "Moderate"},
	{"5", "7.9", "0.6", "6.5", "2.2", "6.8", "3.51", "20", "Other", "Moderate"},
	{"6", "9.1", "1.5", "4.9", "3.5", "5.0", "3.08", "23", "Female", "High"},
}

// SeedTable returns a fresh in-memory copy of the canonical seed.
func SeedTable(t *testing.T) *dataset.Table {
	t.Helper()
	rows := make([][]string, len(SeedRows))
	for i, r := range SeedRows {
		rows[i] = append([]string(nil), r...)
	}
	return &dataset.Table{
		Columns: append([]string(nil), SeedColumns...),
		Rows:    rows,
	}
}

// WriteSeedCSV writes the given table to dir/seed.csv and returns the path.
func WriteSeedCSV(t *testing.T, dir string, table *dataset.Table) string {
	t.Helper()
	path := filepath.Join(dir, "seed.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(table.Columns))
	require.NoError(t, w.WriteAll(table.Rows))
	w.Flush()
	require.NoError(t, w.Error())
	return path
}

// SingleRowSeed returns a one-row seed where the time fields sum to 24:
// Study=4, Extracurricular=3, Sleep=8, Social=2, Physical=7.
func SingleRowSeed(t *testing.T) *dataset.Table {
	t.Helper()
	return &dataset.Table{
		Columns: append([]string(nil), SeedColumns...),
		Rows: [][]string{
			{"1", "4", "3", "8", "2", "7", "3.10", "20", "Female", "Low"},
		},
	}
}
