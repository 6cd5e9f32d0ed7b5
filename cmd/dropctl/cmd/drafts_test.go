package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/droplist/pkg/types"
)

func TestDataURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	png := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n0000"), 0o600))
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0o600))

	u, err := dataURL(png)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "data:image/png;base64,"), u)

	_, err = dataURL(txt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image type")

	_, err = dataURL(filepath.Join(dir, "missing.jpg"))
	require.Error(t, err)
}

func TestPrintDraftDetail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printDraftDetail(&buf, &domain.Draft{
		ID:        "d1",
		Status:    domain.DraftNeedsReview,
		Title:     "Brass desk lamp",
		Price:     "24.99",
		Quantity:  1,
		Specifics: map[string]string{"Material": "Brass", "Brand": "Acme"},
		AINotes:   []string{"Check the cord for wear"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Brass desk lamp")
	assert.Contains(t, out, "24.99 USD")
	assert.Contains(t, out, "Check the cord for wear")
	assert.Less(t, strings.Index(out, "Brand"), strings.Index(out, "Material"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncate(strings.Repeat("é", 20), 10))
}
