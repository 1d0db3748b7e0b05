package skin

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/7eventy7/luckydock/internal/filesys"
	"github.com/7eventy7/luckydock/internal/log"
)

// ErrNotFound is returned when an instance file does not exist on load.
var ErrNotFound = errors.New("skin file not found")

// backupDir sits next to each instance file and holds prior revisions.
const backupDir = "backups"

var _ Store = (*FileStore)(nil)

// Store reads and rewrites instance files. The file is the sole
// persistent store; there is no database behind it.
type Store interface {
	// Load reads and parses the instance file at path. A missing file is
	// reported as ErrNotFound.
	Load(path string) (*Document, error)
	// Save validates doc, backs up the previous revision and atomically
	// rewrites path. The previous file's reserved sections are preserved.
	Save(path string, doc *Document) error
}

// FileStore is the on-disk Store implementation. Writes go through
// AtomicWrite so the engine, which may hold the file open while
// rendering, never observes a half-written file.
type FileStore struct {
	fs   filesys.FileOps
	keep int
}

// NewStore creates a FileStore over the given filesystem. keep bounds how
// many backups are retained per instance file; zero disables backups.
func NewStore(fsys filesys.FileOps, keep int) *FileStore {
	return &FileStore{fs: fsys, keep: keep}
}

// Load reads and parses the instance file at path.
func (s *FileStore) Load(path string) (*Document, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading skin file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

// Save rewrites path from doc, layered over the previous file content.
// A failed backup is logged and does not block the save; the save itself
// is the user's intent.
func (s *FileStore) Save(path string, doc *Document) error {
	prev, err := s.fs.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading skin file: %w", err)
		}
		prev = nil
	}

	out, err := Compose(prev, doc)
	if err != nil {
		return err
	}

	if prev != nil {
		if err := s.backup(path, prev); err != nil {
			log.Warnf("skin: backup of %s failed: %v", path, err)
		}
	}

	if err := filesys.AtomicWrite(s.fs, path, out, 0o644); err != nil {
		return fmt.Errorf("writing skin file: %w", err)
	}
	return nil
}

// backup copies the current file content into the backups folder under a
// timestamped, uuid-suffixed name, then prunes old revisions beyond the
// retention bound.
func (s *FileStore) backup(path string, data []byte) error {
	if s.keep <= 0 {
		return nil
	}

	dir := filepath.Join(filepath.Dir(path), backupDir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}

	base := filepath.Base(path)
	name := fmt.Sprintf("%s.%s.%s.bak", base, time.Now().UTC().Format("20060102T150405"), uuid.NewString())
	if err := s.fs.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}

	return s.prune(dir, base)
}

// prune removes the oldest backups of base until at most keep remain.
// The timestamp prefix makes lexical order chronological.
func (s *FileStore) prune(dir, base string) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listing backup dir: %w", err)
	}

	var backups []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		if strings.HasPrefix(name, base+".") && strings.HasSuffix(name, ".bak") {
			backups = append(backups, name)
		}
	}
	if len(backups) <= s.keep {
		return nil
	}

	sort.Strings(backups)
	var errs error
	for _, name := range backups[:len(backups)-s.keep] {
		if err := s.fs.Remove(filepath.Join(dir, name)); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
