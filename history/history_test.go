package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	recs := Demo()
	require.Len(t, recs, 3)

	assert.Equal(t, "+1,000", recs[0].Signed())
	assert.Equal(t, "-500", recs[1].Signed())
	assert.Equal(t, "-3,000", recs[2].Signed())
	assert.Equal(t, "To: Amazon", recs[2].Peer())
	assert.Equal(t, "From: 0x12...34", recs[0].Peer())

	recs[0].Amount = 1
	assert.Equal(t, int64(1000), Demo()[0].Amount, "Demo must hand out copies")
}

func TestExtended(t *testing.T) {
	recs := Extended()
	require.Len(t, recs, 6)
	for i, r := range recs {
		assert.Equal(t, i+1, r.ID)
	}
	assert.Equal(t, recs[0].Counterparty, recs[3].Counterparty)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		q    string
		want int
	}{
		{"", 3},
		{"amazon", 1},
		{"0x", 2},
		{"2026/01/1", 3},
		{"nobody", 0},
	}
	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			assert.Len(t, Filter(Demo(), tt.q), tt.want)
		})
	}
}
