package contenthash_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandy191020/LexConnect/pkg/contenthash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	// Digest depends only on content, never on name or time.
	assert.Equal(t, contenthash.Sum([]byte("hello")), contenthash.Sum([]byte("hello")))
	assert.NotEqual(t, contenthash.Sum([]byte("hello")), contenthash.Sum([]byte("hello!")))

	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		contenthash.Sum(nil),
	)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("certificate body"), 0o644))

	digest, err := contenthash.File(path)
	require.NoError(t, err)
	assert.Equal(t, contenthash.Sum([]byte("certificate body")), digest)

	_, err = contenthash.File(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
