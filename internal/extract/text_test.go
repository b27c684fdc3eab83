package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFileExtractor(t *testing.T) {
	ctx := context.Background()

	t.Run("reads file contents verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inv.txt")
		require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0644))

		res, err := TextFileExtractor{}.Extract(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two\n", res.Text)
		assert.Equal(t, 1, res.Pages)
		assert.Equal(t, "plain-text", res.Method)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := TextFileExtractor{}.Extract(ctx, filepath.Join(t.TempDir(), "absent.txt"))
		require.Error(t, err)
	})

	t.Run("cancelled context aborts before reading", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := TextFileExtractor{}.Extract(cancelled, "any.txt")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestExtractor_Dispatch(t *testing.T) {
	ctx := context.Background()
	e := NewExtractor(NewPDFExtractor(0, nil))

	t.Run("txt goes to the plain-text extractor", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inv.TXT")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

		res, err := e.Extract(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "plain-text", res.Method)
		assert.Equal(t, "hello", res.Text)
	})

	t.Run("unsupported extension is rejected", func(t *testing.T) {
		_, err := e.Extract(ctx, "photo.jpeg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})

	t.Run("malformed pdf is an extraction error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.pdf")
		require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))

		_, err := e.Extract(ctx, path)
		require.Error(t, err)
	})
}
