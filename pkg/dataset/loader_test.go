package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/synthgen/pkg/apperrors"
	"github.com/veldt-labs/synthgen/pkg/dataset"
	"github.com/veldt-labs/synthgen/pkg/testhelpers"
)

func TestLoad(t *testing.T) {
	seed := testhelpers.SeedTable(t)
	path := testhelpers.WriteSeedCSV(t, t.TempDir(), seed)

	got, err := dataset.Load(path)
	require.NoError(t, err)

	assert.Equal(t, seed.Columns, got.Columns)
	assert.Equal(t, seed.NumRows(), got.NumRows())
	assert.Equal(t, seed.Rows, got.Rows)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("Student_ID,GPA\n"), 0644))

	_, err := dataset.Load(path)
	require.ErrorIs(t, err, apperrors.ErrEmptySeed)
}

func TestLoad_RaggedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n3\n"), 0644))

	_, err := dataset.Load(path)
	require.Error(t, err)
}

func TestTable_NumericColumn(t *testing.T) {
	table := testhelpers.SeedTable(t)

	gpa, err := table.NumericColumn("GPA")
	require.NoError(t, err)
	require.Len(t, gpa, table.NumRows())
	assert.InDelta(t, 2.99, gpa[0], 1e-9)

	_, err = table.NumericColumn("Gender")
	assert.Error(t, err, "non-numeric column must not parse")

	_, err = table.NumericColumn("No_Such_Column")
	assert.True(t, errors.Is(err, apperrors.ErrMissingColumn))
}

func TestTable_MaxIdentifier(t *testing.T) {
	table := testhelpers.SeedTable(t)

	max, err := table.MaxIdentifier("Student_ID")
	require.NoError(t, err)
	assert.Equal(t, int64(6), max)

	_, err = table.MaxIdentifier("Gender")
	assert.True(t, errors.Is(err, apperrors.ErrBadIdentifier))
}
