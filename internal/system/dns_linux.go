//go:build linux

package system

import (
	"fmt"
	"os"
)

const resolvConf = "/etc/resolv.conf"

func currentDNS() ([]string, error) {
	f, err := os.Open(resolvConf)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseResolvConf(f), nil
}

// snapshot stores the resolv.conf content verbatim. Reading needs no
// privilege, so this runs before the terminal is launched.
func snapshot() error {
	data, err := os.ReadFile(resolvConf)
	if err != nil {
		return fmt.Errorf("read resolv.conf: %w", err)
	}
	return saveSnapshot(&DNSSnapshot{
		Linux: &LinuxSnapshot{ResolvConf: string(data)},
	})
}

// reset writes the snapshot back. Writing /etc/resolv.conf requires root;
// the permission error propagates so the caller can say "run with sudo".
func reset() error {
	s, err := loadSnapshot()
	if err != nil {
		return err
	}
	if s == nil || s.Linux == nil {
		return fmt.Errorf("no DNS snapshot recorded; nothing to restore")
	}

	if err := os.WriteFile(resolvConf, []byte(s.Linux.ResolvConf), 0644); err != nil {
		return fmt.Errorf("restore resolv.conf: %w", err)
	}

	return clearSnapshot()
}
