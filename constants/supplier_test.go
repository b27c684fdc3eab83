package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	t.Run("exact names round-trip", func(t *testing.T) {
		for _, s := range []Supplier{Colorama, AAH, Alliance, Lexon, Unknown} {
			got, ok := Canonicalize(string(s))
			assert.True(t, ok)
			assert.Equal(t, s, got)
		}
	})

	t.Run("case and surrounding space are ignored", func(t *testing.T) {
		got, ok := Canonicalize("  colorama ")
		assert.True(t, ok)
		assert.Equal(t, Colorama, got)
	})

	t.Run("unrecognized labels fall back to Unknown", func(t *testing.T) {
		got, ok := Canonicalize("Phoenix")
		assert.False(t, ok)
		assert.Equal(t, Unknown, got)

		got, ok = Canonicalize("")
		assert.False(t, ok)
		assert.Equal(t, Unknown, got)
	})
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, "PDF", MapExtToFormat(".pdf"))
	assert.Equal(t, "PDF", MapExtToFormat(".PDF"))
	assert.Equal(t, "TXT", MapExtToFormat("txt"))
	assert.Equal(t, "", MapExtToFormat(".jpeg"))
	assert.Equal(t, "", MapExtToFormat(""))
}
