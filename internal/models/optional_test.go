package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullAndZero(t *testing.T) {
	type payload struct {
		Price Optional[float64] `json:"price"`
		Name  Optional[string]  `json:"name"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Price.Set)
	assert.False(t, absent.Name.Set)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &null))
	assert.True(t, null.Price.Set)
	assert.True(t, null.Price.Null)

	// A present zero is a value, not an omission.
	var zero payload
	require.NoError(t, json.Unmarshal([]byte(`{"price": 0}`), &zero))
	assert.True(t, zero.Price.Set)
	assert.False(t, zero.Price.Null)
	assert.Equal(t, 0.0, zero.Price.Value)
}

func TestOptionalMarshal(t *testing.T) {
	data, err := json.Marshal(Some("hello"))
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, string(data))

	data, err = json.Marshal(Null[string]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
