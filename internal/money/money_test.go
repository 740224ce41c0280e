package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Cents
	}{
		{"whole", 10, 1000},
		{"two decimals", 3.33, 333},
		{"drifted sum", 0.1 + 0.2, 30},
		{"half rounds away from zero", 0.125, 13},
		{"negative", -20.5, -2050},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFloat(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("12.34")
	require.NoError(t, err)
	assert.Equal(t, Cents(1234), c)

	c, err = Parse("7")
	require.NoError(t, err)
	assert.Equal(t, Cents(700), c)

	_, err = Parse("twelve")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCentsFormatting(t *testing.T) {
	assert.Equal(t, "25.00", Cents(2500).String())
	assert.Equal(t, "-0.05", Cents(-5).String())
	assert.Equal(t, 3.34, Cents(334).Float64())
	assert.Equal(t, Cents(5), Cents(-5).Abs())

	assert.Equal(t, "0.00", Format(math.NaN()))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole", 30, "30.00"},
		{"zero", 0, "0.00"},
		{"drifted sum", 0.1 + 0.2, "0.30"},
		{"binary value below half", 1.005, "1.00"},
		{"binary value below half large", 30.005, "30.00"},
		{"binary value below half again", 2.675, "2.67"},
		{"binary value above half", 1.135, "1.14"},
		{"exact half rounds up", 0.125, "0.13"},
		{"exact half negative", -0.125, "-0.13"},
		{"large", 1e6, "1000000.00"},
		{"inf", math.Inf(-1), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}
