package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/synthgen/pkg/codec"
	"github.com/veldt-labs/synthgen/pkg/dataset"
)

func buildCodec(t *testing.T) *codec.Codec {
	t.Helper()
	table := &dataset.Table{
		Columns: []string{"Gender", "Grade"},
		Rows: [][]string{
			{"Male", "A"},
			{"Female", "B"},
			{"Male", "A"},
			{"Other", "C"},
			{"Female", "A"},
		},
	}
	c, err := codec.Build(table, []string{"Gender", "Grade"})
	require.NoError(t, err)
	return c
}

func TestCodec_FirstSeenOrder(t *testing.T) {
	c := buildCodec(t)

	for i, want := range []string{"Male", "Female", "Other"} {
		code, err := c.Encode("Gender", want)
		require.NoError(t, err)
		assert.Equal(t, i, code)
		assert.Equal(t, want, c.Decode("Gender", i))
	}
	assert.Equal(t, 3, c.Size("Gender"))
	assert.Equal(t, 3, c.Size("Grade"))
}

func TestCodec_RoundTrip(t *testing.T) {
	c := buildCodec(t)

	for code := 0; code < c.Size("Grade"); code++ {
		value := c.Decode("Grade", code)
		back, err := c.Encode("Grade", value)
		require.NoError(t, err)
		assert.Equal(t, code, back)
	}
}

func TestCodec_DecodeClamps(t *testing.T) {
	c := buildCodec(t)

	tests := []struct {
		name string
		code int
		want string
	}{
		{name: "below range", code: -3, want: "Male"},
		{name: "lower bound", code: 0, want: "Male"},
		{name: "upper bound", code: 2, want: "Other"},
		{name: "above range", code: 99, want: "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Decode("Gender", tt.code))
		})
	}
}

func TestCodec_UnknownValueOrColumn(t *testing.T) {
	c := buildCodec(t)

	_, err := c.Encode("Gender", "Unseen")
	assert.Error(t, err)

	_, err = c.Encode("No_Such_Column", "Male")
	assert.Error(t, err)

	assert.Equal(t, "", c.Decode("No_Such_Column", 0))
	assert.Equal(t, 0, c.Size("No_Such_Column"))
}
