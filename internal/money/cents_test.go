package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cents
		wantErr bool
	}{
		{name: "two decimals", input: "9.99", want: 999},
		{name: "whole number", input: "10", want: 1000},
		{name: "one decimal", input: "9.9", want: 990},
		{name: "zero", input: "0", want: 0},
		{name: "zero with decimals", input: "0.00", want: 0},
		{name: "negative", input: "-0.50", want: -50},
		{name: "leading dot", input: ".50", want: 50},
		{name: "explicit plus", input: "+1.25", want: 125},
		{name: "empty", input: "", wantErr: true},
		{name: "three decimals", input: "1.999", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "bare dot", input: ".", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "9.99", Cents(999).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-0.50", Cents(-50).String())
	assert.Equal(t, "15.50", Cents(1550).String())
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Cents(999))
	require.NoError(t, err)
	assert.Equal(t, "9.99", string(data))

	var c Cents
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, Cents(999), c)

	// Zero must survive the trip; it is a legitimate price.
	data, err = json.Marshal(Cents(0))
	require.NoError(t, err)
	assert.Equal(t, "0.00", string(data))
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, Cents(0), c)
}

func TestUnmarshalAcceptsNumericString(t *testing.T) {
	var c Cents
	require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &c))
	assert.Equal(t, Cents(1234), c)
}

func TestSumStaysNumeric(t *testing.T) {
	// 10.00 + 5.50 must equal 15.50, not a concatenated string.
	total := Cents(1000) + Cents(550)
	assert.Equal(t, Cents(1550), total)
	assert.Equal(t, "15.50", total.String())
}
