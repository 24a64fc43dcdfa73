// Package cache persists evaluation results on disk keyed by expression.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/unicode/norm"

	"bigcalc/internal/bignum"
)

// schemaVersion is bumped whenever Entry changes shape.
const schemaVersion uint16 = 2

const entryExt = ".mp"

// Entry is the on-disk record for one expression.
type Entry struct {
	Schema    uint16
	Expr      string // normalized expression
	Result    string // canonical decimal text
	Bound     int    // argument bound the result was computed under, 0 if none
	CreatedAt time.Time
}

// Digest identifies a normalized expression.
type Digest [sha256.Size]byte

// String returns the hex form of d.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Normalize folds compatibility characters and collapses whitespace so that
// equivalent spellings of an expression share one entry.
func Normalize(expr string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(expr)), " ")
}

// Key returns the digest of the normalized expression.
func Key(expr string) Digest {
	return sha256.Sum256([]byte(Normalize(expr)))
}

// Store is a directory of msgpack entries. A nil *Store is a valid cache
// that never hits. Safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// DefaultDir returns $XDG_CACHE_HOME/bigcalc, falling back to ~/.cache/bigcalc.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "bigcalc"), nil
}

// Open creates dir if needed and returns a Store rooted there.
// An empty dir selects DefaultDir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

func (s *Store) pathFor(key Digest) string {
	hexKey := key.String()
	return filepath.Join(s.dir, "results", hexKey[:2], hexKey+entryExt)
}

// covers reports whether a result computed under bound entry is valid under
// bound want. A bound of 0 or less means unbounded.
func covers(want, entry int) bool {
	switch {
	case want <= 0:
		return true
	case entry <= 0:
		return false
	default:
		return want >= entry
	}
}

// Put records the result of expr evaluated under bound, replacing any
// previous entry atomically.
func (s *Store) Put(expr string, bound int, result bignum.BigInt) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pathFor(Key(expr))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp) //nolint:errcheck
		}
	}()

	entry := Entry{
		Schema:    schemaVersion,
		Expr:      Normalize(expr),
		Result:    result.String(),
		Bound:     max(bound, 0),
		CreatedAt: time.Now().UTC(),
	}
	if err := msgpack.NewEncoder(f).Encode(&entry); err != nil {
		_ = f.Close() //nolint:errcheck
		return fmt.Errorf("cache: encode %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		return err
	}
	committed = true
	return nil
}

// Get returns the cached result of expr for a caller evaluating under bound.
// Entries written by another schema version, for a colliding expression, or
// under a bound larger than the caller's are reported as misses.
func (s *Store) Get(expr string, bound int) (bignum.BigInt, bool, error) {
	if s == nil {
		return bignum.BigInt{}, false, nil
	}
	entry, ok, err := s.load(Key(expr))
	if err != nil || !ok {
		return bignum.BigInt{}, false, err
	}
	if entry.Schema != schemaVersion || entry.Expr != Normalize(expr) || !covers(bound, entry.Bound) {
		return bignum.BigInt{}, false, nil
	}
	v, err := bignum.Parse(entry.Result)
	if err != nil {
		return bignum.BigInt{}, false, fmt.Errorf("cache: corrupt entry for %q: %w", entry.Expr, err)
	}
	return v, true, nil
}

func (s *Store) load(key Digest) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	defer f.Close()

	var entry Entry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return Entry{}, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return entry, true, nil
}

// Len counts the stored entries.
func (s *Store) Len() (int, error) {
	if s == nil {
		return 0, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	err := filepath.WalkDir(filepath.Join(s.dir, "results"), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), entryExt) {
			n++
		}
		return nil
	})
	return n, err
}

// DropAll removes every entry. The store stays usable afterwards.
func (s *Store) DropAll() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	results := filepath.Join(s.dir, "results")
	old := results + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(results, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
