package scanner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinary(t *testing.T) {
	t.Run("empty buffer is text", func(t *testing.T) {
		assert.False(t, IsBinary(nil))
		assert.False(t, IsBinary([]byte{}))
	})

	t.Run("any null byte means binary", func(t *testing.T) {
		assert.True(t, IsBinary([]byte{0}))
		assert.True(t, IsBinary(append([]byte("perfectly fine text"), 0)))
	})

	t.Run("plain text is text", func(t *testing.T) {
		assert.False(t, IsBinary([]byte("hello world\nline two\ttabbed\r\n")))
	})

	t.Run("high bytes still count as text", func(t *testing.T) {
		assert.False(t, IsBinary([]byte{0xC3, 0xA9, 0xE2, 0x82, 0xAC, 'a', 'b'}))
	})

	t.Run("control-heavy buffer is binary", func(t *testing.T) {
		buf := bytes.Repeat([]byte{1, 2, 3, 'a', 'b', 'c'}, 10) // 50% non-text
		assert.True(t, IsBinary(buf))
	})

	t.Run("ratio boundary is exclusive", func(t *testing.T) {
		// 3 of 10 bytes non-text: exactly 0.30, which is not over the limit
		buf := append(bytes.Repeat([]byte{1}, 3), bytes.Repeat([]byte{'a'}, 7)...)
		assert.False(t, IsBinary(buf))
	})

	t.Run("allowed control characters are text", func(t *testing.T) {
		assert.False(t, IsBinary([]byte{7, 8, 9, 10, 12, 13, 27}))
	})
}
