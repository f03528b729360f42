package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPush(t *testing.T) {
	var a Slice
	a.Push(1)
	a.Push(2)
	assert.Equal(t, Slice{1.0, 2.0}, a)
	assert.Equal(t, 2, a.Length())
}

func TestLast(t *testing.T) {
	a := New(1, 2, 3)
	assert.Equal(t, 3.0, a.Last())

	var empty Slice
	assert.Equal(t, 0.0, empty.Last())
}

func TestMean(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	assert.Equal(t, 3.0, a.Mean())

	var empty Slice
	assert.Equal(t, 0.0, empty.Mean())
}

func TestMinMax(t *testing.T) {
	a := New(4, 1, 5, 2)
	assert.Equal(t, 1.0, a.Min())
	assert.Equal(t, 5.0, a.Max())
}

func TestTail(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	assert.Equal(t, Slice{3.0, 4.0, 5.0}, a.Tail(3))
	assert.Equal(t, Slice{1.0, 2.0, 3.0, 4.0, 5.0}, a.Tail(10))
}
