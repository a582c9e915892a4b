package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore implements Store using the local filesystem.
// Content is stored at: {baseDir}/{hex(cid[0])}/{hex(cid)}
// The first byte (2 hex chars) is used as a subdirectory for sharding.
// Compressed entries carry a .gz suffix.
type FileStore struct {
	baseDir  string
	compress bool
	mu       sync.RWMutex
}

// Compile-time interface check.
var _ Store = (*FileStore)(nil)

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithCompression makes the store write new content gzip-compressed.
// Reads stay transparent for both compressed and plain entries.
func WithCompression() FileStoreOption {
	return func(fs *FileStore) { fs.compress = true }
}

// NewFileStore creates a file-based content store rooted at baseDir.
// The directory is created if it does not exist.
func NewFileStore(baseDir string, opts ...FileStoreOption) (*FileStore, error) {
	if baseDir == "" {
		return nil, ErrInvalidBaseDir
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	fs := &FileStore{baseDir: baseDir}
	for _, opt := range opts {
		opt(fs)
	}
	return fs, nil
}

// CIDToPath converts a CID to its plain filesystem path.
// Uses the first byte as subdirectory for sharding: {base}/{ab}/{abcdef...}
func CIDToPath(baseDir string, cid CID) string {
	hexCID := cid.String()
	return filepath.Join(baseDir, hexCID[:2], hexCID)
}

// shardDir returns the shard directory path for a CID.
func (fs *FileStore) shardDir(cid CID) string {
	return filepath.Join(fs.baseDir, cid.String()[:2])
}

// entryPath locates the on-disk entry for cid, preferring the plain form
// over the compressed one. Returns ErrNotFound when neither exists.
func (fs *FileStore) entryPath(cid CID) (path string, compressed bool, err error) {
	plain := CIDToPath(fs.baseDir, cid)
	for _, e := range []struct {
		path       string
		compressed bool
	}{{plain, false}, {plain + compressedSuffix, true}} {
		_, err := os.Stat(e.path)
		if err == nil {
			return e.path, e.compressed, nil
		}
		if !os.IsNotExist(err) {
			return "", false, fmt.Errorf("%w: %w", ErrIOFailure, err)
		}
	}
	return "", false, ErrNotFound
}

// Put stores data under cid after verifying the content binding.
func (fs *FileStore) Put(cid CID, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyContent
	}
	if ComputeCID(data) != cid {
		return fmt.Errorf("%w: %s", ErrCIDMismatch, cid)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	// Ensure shard directory exists
	if err := os.MkdirAll(fs.shardDir(cid), 0700); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	plain := CIDToPath(fs.baseDir, cid)
	path, other := plain, plain+compressedSuffix
	if fs.compress {
		var err error
		if data, err = compressGZIP(data); err != nil {
			return err
		}
		path, other = plain+compressedSuffix, plain
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	// Drop any stale entry in the other form.
	if err := os.Remove(other); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// Get retrieves the bytes stored under cid, decompressing if needed.
func (fs *FileStore) Get(cid CID) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	path, compressed, err := fs.entryPath(cid)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	if compressed {
		return decompressGZIP(data)
	}
	return data, nil
}

// Has reports whether content exists for cid.
func (fs *FileStore) Has(cid CID) (bool, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, _, err := fs.entryPath(cid)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the content stored under cid.
func (fs *FileStore) Delete(cid CID) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path, _, err := fs.entryPath(cid)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// Size returns the on-disk size in bytes of the content for cid.
// For compressed entries this is the compressed size.
func (fs *FileStore) Size(cid CID) (int64, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	path, _, err := fs.entryPath(cid)
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return info.Size(), nil
}

// List returns all stored identifiers by scanning the shard directories.
func (fs *FileStore) List() ([]CID, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	entries, err := os.ReadDir(fs.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	var result []CID
	for _, entry := range entries {
		// Shard directories are 2-character hex strings
		if !entry.IsDir() || len(entry.Name()) != 2 {
			continue
		}

		files, err := os.ReadDir(filepath.Join(fs.baseDir, entry.Name()))
		if err != nil {
			continue
		}

		for _, f := range files {
			if f.IsDir() {
				continue
			}
			name := strings.TrimSuffix(f.Name(), compressedSuffix)
			cid, err := ParseCID(name)
			if err != nil {
				continue // skip foreign files
			}
			result = append(result, cid)
		}
	}

	return result, nil
}
