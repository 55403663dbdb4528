//go:build !linux && !windows

package system

import "errors"

var errUnsupported = errors.New("dns configuration is not supported on this platform")

func currentDNS() ([]string, error) {
	return nil, errUnsupported
}

func snapshot() error {
	return errUnsupported
}

func reset() error {
	return errUnsupported
}
