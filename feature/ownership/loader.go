package ownership

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"steam-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectScheme prefixes games lists stored in object storage.
const ObjectScheme = "s3://"

// ErrGamesFileNotFound is returned when the games list does not exist.
var ErrGamesFileNotFound = errors.New("games file not found")

// Loader reads newline-delimited games lists from disk or object storage.
type Loader struct {
	store storage.Client
}

// NewLoader creates a loader. store may be nil when only local files are read.
func NewLoader(store storage.Client) *Loader {
	return &Loader{store: store}
}

// IsObjectPath reports whether path points into object storage.
func IsObjectPath(path string) bool {
	return strings.HasPrefix(path, ObjectScheme)
}

// Load returns the trimmed, non-empty lines of the games list at path.
func (l *Loader) Load(ctx context.Context, path string) ([]string, error) {
	if IsObjectPath(path) {
		return l.loadObject(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrGamesFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open games file: %w", err)
	}
	defer f.Close()

	return readLines(f)
}

func (l *Loader) loadObject(ctx context.Context, path string) ([]string, error) {
	if l.store == nil {
		return nil, fmt.Errorf("no object storage configured for %s", path)
	}

	bucket, key, err := parseObjectPath(path)
	if err != nil {
		return nil, err
	}

	if _, err := l.store.StatObject(ctx, bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrGamesFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat games object: %w", err)
	}

	rc, err := l.store.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get games object: %w", err)
	}
	defer rc.Close()

	return readLines(rc)
}

// parseObjectPath splits s3://bucket/key into its bucket and key.
func parseObjectPath(path string) (string, string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", "", fmt.Errorf("invalid object path %q: %w", path, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid object path %q: expected s3://<bucket>/<key>", path)
	}
	return u.Host, key, nil
}

// readLines has no line length limit.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read games list: %w", err)
		}
	}

	return lines, nil
}
