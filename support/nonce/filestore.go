// Package nonce provides the durable nonce store consumed by authenticated
// exchange requests. The stored value must strictly increase by exactly one
// per request; reuse or decrease permanently invalidates the API key on the
// exchange side, so the new value is committed to disk before it is returned.
package nonce

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/tradeforge/yobit/api"
)

// ensure that FileStore conforms to the NonceStore interface
var _ api.NonceStore = &FileStore{}

// FileStore persists the nonce in a small file keyed by API key identity
type FileStore struct {
	filepath string

	mu     sync.Mutex
	loaded bool
	value  int64
}

// MakeFileStore is a factory method. The nonce file lives under dir and is
// named after a hash of the public API key, so rotating keys starts a fresh
// sequence without touching the old one.
func MakeFileStore(dir string, apiKey string) *FileStore {
	keyHash := sha256.Sum256([]byte(apiKey))
	filename := hex.EncodeToString(keyHash[:8]) + ".nonce"
	return &FileStore{
		filepath: filepath.Join(dir, filename),
	}
}

// Next returns the next nonce, committing it to durable storage before
// returning so a crash can never cause the value to be handed out twice
func (s *FileStore) Next() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		v, e := s.read()
		if e != nil {
			return 0, e
		}
		s.value = v
		s.loaded = true
	}

	if s.value >= api.MaxNonce {
		return 0, api.MakeErrNonceExhausted()
	}

	next := s.value + 1
	if e := s.commit(next); e != nil {
		return 0, fmt.Errorf("could not persist nonce: %s", e)
	}
	s.value = next
	return next, nil
}

func (s *FileStore) read() (int64, error) {
	data, e := os.ReadFile(s.filepath)
	if os.IsNotExist(e) {
		return 0, nil
	}
	if e != nil {
		return 0, fmt.Errorf("could not read nonce file '%s': %s", s.filepath, e)
	}

	v, e := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if e != nil {
		return 0, fmt.Errorf("nonce file '%s' is corrupt: %s", s.filepath, e)
	}
	if v < 0 || v > api.MaxNonce {
		return 0, fmt.Errorf("nonce file '%s' holds out-of-range value %d", s.filepath, v)
	}
	return v, nil
}

// commit writes the value to a temp file, fsyncs it, and renames it over the
// nonce file. The rename is atomic on POSIX filesystems, so a crash mid-write
// leaves either the old committed value or the new one, never a torn file.
func (s *FileStore) commit(value int64) error {
	if e := os.MkdirAll(filepath.Dir(s.filepath), 0700); e != nil {
		return fmt.Errorf("could not create nonce directory: %s", e)
	}

	tmpPath := s.filepath + ".tmp"
	f, e := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if e != nil {
		return fmt.Errorf("could not create temp nonce file: %s", e)
	}

	if _, e = f.WriteString(strconv.FormatInt(value, 10)); e != nil {
		f.Close()
		return fmt.Errorf("could not write temp nonce file: %s", e)
	}
	if e = f.Sync(); e != nil {
		f.Close()
		return fmt.Errorf("could not sync temp nonce file: %s", e)
	}
	if e = f.Close(); e != nil {
		return fmt.Errorf("could not close temp nonce file: %s", e)
	}

	if e = os.Rename(tmpPath, s.filepath); e != nil {
		return fmt.Errorf("could not rename temp nonce file into place: %s", e)
	}
	return nil
}
