package supplier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimali/invoice-wizard/constants"
)

func TestDetect(t *testing.T) {
	t.Run("identifies each supplier by its fingerprint", func(t *testing.T) {
		cases := map[string]constants.Supplier{
			"Supplied by LAXMICO Ltd":            constants.Colorama,
			"AAH Pharmaceuticals invoice":        constants.AAH,
			"Alliance Healthcare (Distribution)": constants.Alliance,
			"Lexon UK statement":                 constants.Lexon,
		}
		for text, want := range cases {
			assert.Equal(t, want, Detect(text), "text %q", text)
		}
	})

	t.Run("returns Unknown when no fingerprint is present", func(t *testing.T) {
		assert.Equal(t, constants.Unknown, Detect("Phoenix Medical invoice 42"))
		assert.Equal(t, constants.Unknown, Detect(""))
	})

	t.Run("is case insensitive", func(t *testing.T) {
		assert.Equal(t, constants.Colorama, Detect("laXmiCo"))
		assert.Equal(t, constants.AAH, Detect("aah"))
	})

	t.Run("fingerprint position in text does not matter", func(t *testing.T) {
		assert.Equal(t, constants.Lexon, Detect("long preamble\nmore lines\nfinally lexon appears"))
	})

	t.Run("earliest rule wins on overlapping fingerprints", func(t *testing.T) {
		// rule order, not position in the text, decides
		assert.Equal(t, constants.Colorama, Detect("aah something laxmico"))
		assert.Equal(t, constants.AAH, Detect("alliance depot, supplied via AAH"))
	})

	t.Run("repeated classification is identical", func(t *testing.T) {
		text := "LAXMICO invoice with aah and alliance mentioned"
		first := Detect(text)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Detect(text))
		}
	})
}
