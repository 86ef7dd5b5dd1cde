package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomIntnInRange(t *testing.T) {
	r := New()
	for i := 0; i < 200; i++ {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
	assert.Equal(t, a.String(12, "ABC"), b.String(12, "ABC"))
}

func TestStringUsesAlphabet(t *testing.T) {
	s := NewSeeded(1).String(32, "xy")
	assert.Len(t, s, 32)
	for _, c := range s {
		assert.Contains(t, "xy", string(c))
	}
	assert.Empty(t, New().String(0, "xy"))
	assert.Empty(t, New().String(5, ""))
}
