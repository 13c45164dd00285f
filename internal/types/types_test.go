package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "a", *StringPtr("a"))
	assert.True(t, StringNilOrEmpty(nil))
	assert.True(t, StringNilOrEmpty(StringPtr("")))
	assert.False(t, StringNilOrEmpty(StringPtr("x")))
	assert.Equal(t, "", SafeString(nil))
	assert.Equal(t, "x", SafeString(StringPtr("x")))
	assert.Nil(t, NonEmptyPtr("   "))
	assert.Equal(t, "Coupe", *NonEmptyPtr(" Coupe "))
	assert.Equal(t, 3, *IntPtr(3))
}

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		value   float64
		wantErr bool
	}{
		{name: "number", input: `335`, valid: true, value: 335},
		{name: "decimal", input: `4.7`, valid: true, value: 4.7},
		{name: "quoted number", input: `"11.76"`, valid: true, value: 11.76},
		{name: "quoted with spaces", input: `" 2 "`, valid: true, value: 2},
		{name: "empty string", input: `""`},
		{name: "null", input: `null`},
		{name: "garbage", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				N FlexNumber `json:"n"`
			}
			err := json.Unmarshal([]byte(`{"n":`+tt.input+`}`), &payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.valid, payload.N.Valid)
			assert.InDelta(t, tt.value, payload.N.Value, 1e-9)
		})
	}
}

func TestFlexNumber_Missing(t *testing.T) {
	var payload struct {
		N FlexNumber `json:"n"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.False(t, payload.N.Valid)
	assert.Nil(t, payload.N.Ptr())
	assert.Equal(t, 0, payload.N.Int())
}

func TestFlexNumber_MarshalJSON(t *testing.T) {
	data, err := json.Marshal([]FlexNumber{{Value: 1.5, Valid: true}, {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5,null]`, string(data))
}

func TestFlexList_UnmarshalJSON(t *testing.T) {
	type item struct {
		Value string `json:"value"`
	}

	var list FlexList[item]
	require.NoError(t, json.Unmarshal([]byte(`[{"value":"1"},{"value":"2"}]`), &list))
	assert.Equal(t, FlexList[item]{{Value: "1"}, {Value: "2"}}, list)

	require.NoError(t, json.Unmarshal([]byte(`{"value":"3"}`), &list))
	assert.Equal(t, FlexList[item]{{Value: "3"}}, list)

	require.NoError(t, json.Unmarshal([]byte(`null`), &list))
	assert.Nil(t, list)
}
