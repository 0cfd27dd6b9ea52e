package uploads

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	dErrors "maricheck/pkg/domain-errors"
)

// DefaultMaxBytes caps a single multipart request.
const DefaultMaxBytes int64 = 16 << 20

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// LocalStore writes uploaded documents under a root directory, one
// sub-directory per category. References are slash-separated paths relative
// to the root.
type LocalStore struct {
	root   string
	logger *slog.Logger
}

type Option func(*LocalStore)

func WithLogger(logger *slog.Logger) Option {
	return func(s *LocalStore) {
		s.logger = logger
	}
}

func NewLocalStore(root string, opts ...Option) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	s := &LocalStore{root: abs, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Save copies r into {category}/{category}_{8 hex}_{base}{ext} and returns
// that reference.
func (s *LocalStore) Save(ctx context.Context, r io.Reader, originalName, category string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	category = SanitizeFilename(category)
	if category == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "upload category is required")
	}

	ref := BuildReference(category, originalName, uuid.New())
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create category dir: %w", err)
	}

	dst := filepath.Join(s.root, filepath.FromSlash(ref))
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	s.logger.DebugContext(ctx, "stored upload", "reference", ref)
	return ref, nil
}

// Open resolves a reference produced by Save. References that escape the
// root are reported as not found.
func (s *LocalStore) Open(ref string) (*os.File, error) {
	full, ok := s.resolve(ref)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
	}
	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		return nil, fmt.Errorf("open upload: %w", err)
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
	}
	return f, nil
}

// Delete removes a stored document. A missing file is not an error.
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	full, ok := s.resolve(ref)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "document not found")
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	s.logger.DebugContext(ctx, "deleted upload", "reference", ref)
	return nil
}

func (s *LocalStore) resolve(ref string) (string, bool) {
	if ref == "" || strings.Contains(ref, "\x00") || strings.Contains(ref, `\`) {
		return "", false
	}
	clean := path.Clean("/" + ref)[1:]
	if clean == "" || clean != strings.TrimPrefix(ref, "/") {
		return "", false
	}
	full := filepath.Join(s.root, filepath.FromSlash(clean))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return full, true
}

// BuildReference composes the stored reference for originalName.
func BuildReference(category, originalName string, random uuid.UUID) string {
	name := SanitizeFilename(originalName)
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	hex := strings.ReplaceAll(random.String(), "-", "")[:8]
	return fmt.Sprintf("%s/%s_%s_%s%s", category, category, hex, base, ext)
}

// SanitizeFilename reduces name to ASCII letters, digits, '_', '.' and '-'.
// Accents are folded, whitespace runs become '_', path separators are
// dropped and leading or trailing dots and underscores are trimmed.
func SanitizeFilename(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), name)
	if err != nil {
		folded = name
	}
	folded = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return ' '
		}
		return r
	}, folded)
	joined := strings.Join(strings.Fields(folded), "_")
	return strings.Trim(unsafeChars.ReplaceAllString(joined, ""), "._")
}
