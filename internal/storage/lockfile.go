package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// lockSuffix is appended to the hidden lock file name beside the target.
const lockSuffix = ".skflock"

// LockPath returns the advisory lock file path for target: a dotfile in
// the same directory.
func LockPath(target string) string {
	dir, base := filepath.Split(target)
	return filepath.Join(dir, "."+base+lockSuffix)
}

// LockInfo identifies the session recorded in a lock file.
type LockInfo struct {
	SessionID uuid.UUID
	PID       int
}

// String renders the holder for a status-line warning.
func (info *LockInfo) String() string {
	return fmt.Sprintf("session %s (pid %d)", info.SessionID.String()[:8], info.PID)
}

// Lock is a held advisory lock file, removed on Release.
type Lock struct {
	path string
}

// AcquireLock writes an advisory lock file beside target recording the
// session UUID and PID. The lock never blocks: if another session's lock
// is already present, its info is returned alongside the fresh lock so
// the caller can warn. A write failure returns the previous holder (if
// any) with the error.
func AcquireLock(target string, session uuid.UUID) (*Lock, *LockInfo, error) {
	lockPath := LockPath(target)
	prev := readLockInfo(lockPath)

	content := fmt.Sprintf("%s\n%d\n", session, os.Getpid())
	if err := os.WriteFile(lockPath, []byte(content), 0644); err != nil {
		return nil, prev, &PathError{Op: "lock", Path: lockPath, Err: err}
	}
	return &Lock{path: lockPath}, prev, nil
}

// Release removes the lock file. Releasing a nil or already-released
// lock is a no-op.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return &PathError{Op: "unlock", Path: l.path, Err: err}
	}
	return nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// readLockInfo parses a lock file, returning nil for missing or
// malformed content.
func readLockInfo(path string) *LockInfo {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) < 2 {
		return nil
	}
	id, err := uuid.Parse(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil
	}
	pid, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil
	}
	return &LockInfo{SessionID: id, PID: pid}
}
