package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRlt_GetOutOfRange(t *testing.T) {
	r := newRlt(3)
	r.set(1, -5)

	assert.Equal(t, 0, r.Get(-1))
	assert.Equal(t, 0, r.Get(3))
	assert.Equal(t, -5, r.Get(1))
	assert.Equal(t, 0, r.Get(0))
}

func TestRlt_Text(t *testing.T) {
	r := newRlt(4)
	r.set(0, 0)
	r.set(1, -1)
	r.set(2, 4)
	r.set(3, 0)

	assert.Equal(t, "0, -1, 4, 0", r.Text())
}

func TestRlt_NumEntries(t *testing.T) {
	r := newRlt(2)
	r.setNumEntries(5)
	assert.Equal(t, 5, r.NumEntries())
	assert.Equal(t, 2, r.Len())
}
