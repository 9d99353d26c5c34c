// Package csvstore implements domain.RecordRepository on a flat CSV file.
//
// Every append rewrites the whole file: the current rows are read, the new
// row is added, and the result is written to a temporary file in the same
// directory which is then renamed over the original. The read-modify-write
// runs under an advisory lock on "<path>.lock" so cooperating processes do not
// lose each other's updates.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"healthdash/internal/domain"
)

// Store is a CSV-backed record log.
type Store struct {
	path string
	lock *flock.Flock

	// rename commits the temp file; swapped in tests to force a failed write.
	rename func(oldpath, newpath string) error
}

var _ domain.RecordRepository = (*Store)(nil)

// New returns a Store for path. The file is not touched until the first
// Append.
func New(path string) *Store {
	return &Store{path: path, lock: flock.New(path + ".lock"), rename: os.Rename}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// LoadAll returns every record in file order. A missing or empty file is an
// empty store.
func (s *Store) LoadAll(ctx context.Context) ([]domain.HealthRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.read()
}

// Append adds r to the end of the file, creating it if needed.
func (s *Store) Append(ctx context.Context, r domain.HealthRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return &domain.StoreWriteError{Path: s.path, Op: "mkdir", Err: err}
		}
	}

	if err := s.lock.Lock(); err != nil {
		return &domain.StoreWriteError{Path: s.path, Op: "lock", Err: err}
	}
	defer func() { _ = s.lock.Unlock() }()

	records, err := s.read()
	if err != nil {
		return err
	}
	records = append(records, r)
	return s.writeAtomic(records)
}

func (s *Store) read() ([]domain.HealthRecord, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.HealthRecord{}, nil
	}
	if err != nil {
		return nil, &domain.StoreReadError{Path: s.path, Err: err}
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []domain.HealthRecord{}, nil
	}
	if err != nil {
		return nil, &domain.StoreReadError{Path: s.path, Line: 1, Err: err}
	}
	if err := checkHeader(header); err != nil {
		return nil, &domain.StoreReadError{Path: s.path, Line: 1, Err: err}
	}

	records := []domain.HealthRecord{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.StoreReadError{Path: s.path, Line: parseErrLine(err), Err: err}
		}
		line, _ := cr.FieldPos(0)
		rec, col, err := decode(row)
		if err != nil {
			return nil, &domain.StoreReadError{Path: s.path, Line: line, Column: col, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseErrLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}

func (s *Store) writeAtomic(records []domain.HealthRecord) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &domain.StoreWriteError{Path: s.path, Op: "create temp", Err: err}
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		return &domain.StoreWriteError{Path: s.path, Op: "write header", Err: err}
	}
	for _, r := range records {
		if err := w.Write(encode(r)); err != nil {
			return &domain.StoreWriteError{Path: s.path, Op: "write row", Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &domain.StoreWriteError{Path: s.path, Op: "flush", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &domain.StoreWriteError{Path: s.path, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &domain.StoreWriteError{Path: s.path, Op: "close", Err: err}
	}
	if err := os.Chmod(tmpPath, s.fileMode()); err != nil {
		return &domain.StoreWriteError{Path: s.path, Op: "chmod", Err: err}
	}
	if err := s.rename(tmpPath, s.path); err != nil {
		return &domain.StoreWriteError{Path: s.path, Op: "rename", Err: err}
	}
	committed = true
	syncDir(dir)
	return nil
}

// fileMode keeps the permissions of an existing data file; new files get 0644.
func (s *Store) fileMode() os.FileMode {
	if fi, err := os.Stat(s.path); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}

// syncDir flushes the directory entry after a rename. Not every platform
// supports fsync on directories, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
