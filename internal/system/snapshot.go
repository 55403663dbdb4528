package system

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"dnshell/internal/config"
)

const snapshotFile = "dns-snapshot.json"

// DNSSnapshot records the resolver state before the generated script runs,
// so `dnshell reset` can put it back. Stored in the user config dir: the
// tool runs unprivileged and must not assume a writable system directory.
type DNSSnapshot struct {
	CreatedAt time.Time `json:"created_at"`

	Linux   *LinuxSnapshot   `json:"linux,omitempty"`
	Windows *WindowsSnapshot `json:"windows,omitempty"`
}

// LinuxSnapshot keeps the verbatim resolv.conf content.
type LinuxSnapshot struct {
	ResolvConf string `json:"resolv_conf"`
}

// WindowsSnapshot keeps the static DNS servers per interface index.
type WindowsSnapshot struct {
	Interfaces map[int][]string `json:"interfaces"`
}

func snapshotPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, snapshotFile), nil
}

// Snapshot records the current platform resolver state.
// Implementation is platform-specific.
func Snapshot() error {
	return snapshot()
}

func saveSnapshot(s *DNSSnapshot) error {
	s.CreatedAt = time.Now()
	path, err := snapshotPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// loadSnapshot returns the recorded state, or nil when none exists.
func loadSnapshot() (*DNSSnapshot, error) {
	path, err := snapshotPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var s DNSSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func clearSnapshot() error {
	path, err := snapshotPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
