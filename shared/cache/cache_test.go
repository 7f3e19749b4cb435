package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draft struct {
	ServiceID string `json:"serviceId"`
	Step      int    `json:"step"`
}

func TestEncodeDecode(t *testing.T) {
	raw, err := encode(draft{ServiceID: "s-1", Step: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"serviceId":"s-1","step":2}`, string(raw))

	var out draft
	require.NoError(t, decode(string(raw), &out))
	assert.Equal(t, draft{ServiceID: "s-1", Step: 2}, out)
}

func TestEncodeDecode_Counter(t *testing.T) {
	raw, err := encode(7)
	require.NoError(t, err)

	var count int
	require.NoError(t, decode(string(raw), &count))
	assert.Equal(t, 7, count)
}

func TestEncodeDecode_StringVerbatim(t *testing.T) {
	raw, err := encode("catalog")
	require.NoError(t, err)
	assert.Equal(t, []byte("catalog"), raw)

	var s string
	require.NoError(t, decode("catalog", &s))
	assert.Equal(t, "catalog", s)
}

func TestEncodeDecode_Errors(t *testing.T) {
	_, err := encode(make(chan int))
	assert.ErrorContains(t, err, "marshal")

	var out draft
	assert.ErrorContains(t, decode("{broken", &out), "unmarshal")
}
