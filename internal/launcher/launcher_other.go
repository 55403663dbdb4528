//go:build !linux && !windows

package launcher

import "errors"

func launch(scriptPath string) error {
	return errors.New("launching a terminal is not supported on this platform")
}
