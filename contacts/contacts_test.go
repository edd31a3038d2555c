package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemo(t *testing.T) {
	c := Demo()
	assert.Len(t, c, 3)
	for _, ct := range c {
		assert.Equal(t, ct.Name[len(ct.Name)-1:], ct.Initial)
		assert.NotEmpty(t, ct.Address)
	}
}
