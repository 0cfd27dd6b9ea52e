package uploads

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "maricheck/pkg/domain-errors"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"My Passport.pdf":        "My_Passport.pdf",
		"../../etc/passwd":       "etc_passwd",
		"résumé final.docx":      "resume_final.docx",
		"  .hidden  ":            "hidden",
		"scan (1) [copy].png":    "scan_1_copy.png",
		"子供.jpg":                 "jpg",
		"":                       "",
		`C:\Users\crew\cdc.jpeg`: "C_Users_crew_cdc.jpeg",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}

func TestBuildReference(t *testing.T) {
	random := uuid.MustParse("0123abcd-0000-4000-8000-000000000000")
	assert.Equal(t, "passport/passport_0123abcd_My_Scan.pdf", BuildReference("passport", "My Scan.pdf", random))
	assert.Equal(t, "photo/photo_0123abcd_png", BuildReference("photo", "....png", random))
}

func TestLocalStore_SaveAndOpen(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), strings.NewReader("%PDF-1.4"), "cdc book.pdf", "cdc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "cdc/cdc_"))
	assert.True(t, strings.HasSuffix(ref, "_cdc_book.pdf"))

	f, err := store.Open(ref)
	require.NoError(t, err)
	defer f.Close()
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
}

func TestLocalStore_SaveTwiceKeepsBothFiles(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	a, err := store.Save(context.Background(), strings.NewReader("a"), "photo.jpg", "photo")
	require.NoError(t, err)
	b, err := store.Save(context.Background(), strings.NewReader("b"), "photo.jpg", "photo")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	entries, err := os.ReadDir(filepath.Join(root, "photo"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLocalStore_OpenRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(root), "secret.txt"), []byte("x"), 0o600))
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	for _, ref := range []string{"../secret.txt", "cdc/../../secret.txt", "", "/etc/passwd", `cdc\..\x`, "cdc"} {
		_, err := store.Open(ref)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound), "ref %q", ref)
	}
}

func TestLocalStore_SaveHonoursCancelledContext(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Save(ctx, strings.NewReader("x"), "a.pdf", "cdc")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStore_Delete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := store.Save(ctx, strings.NewReader("x"), "coc.pdf", "crew")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, ref))

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))

	// already gone
	require.NoError(t, store.Delete(ctx, ref))

	err = store.Delete(ctx, "../outside.txt")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
