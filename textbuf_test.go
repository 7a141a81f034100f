package muon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextBufferBackspaceRespectsUTF8(t *testing.T) {
	b := NewTextBuffer(32)
	b.SetString("héllo") // 68 C3 A9 6C 6C 6F

	b.backspace()
	assert.Equal(t, "héll", b.String())
	b.backspace()
	assert.Equal(t, "hél", b.String())
	b.backspace()
	assert.Equal(t, "hé", b.String())
	b.backspace() // the two-byte é goes as a unit
	assert.Equal(t, "h", b.String())
	b.backspace()
	assert.Equal(t, "", b.String())
	b.backspace() // empty buffer is a no-op
	assert.Equal(t, "", b.String())
}

func TestTextBufferCapacity(t *testing.T) {
	b := NewTextBuffer(4)
	b.SetString("abcdefgh")
	assert.Equal(t, "abcd", b.String())
	assert.Equal(t, 0, b.available())

	b.Clear()
	assert.Equal(t, 0, b.Len())
	b.append([]byte("xy"))
	assert.Equal(t, "xy", b.String())
	assert.Equal(t, 2, b.available())
}
