// Package script renders the shell script that applies the DNS setting and
// keeps an interactive shell open, and writes it to the working directory.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/encoding/simplifiedchinese"

	"dnshell/internal/platform"
	"dnshell/internal/validate"
)

// Fixed artifact names. An existing file of the same name is overwritten.
const (
	WindowsFileName = "temp_dns_cmd.bat"
	LinuxFileName   = "temp_dns_terminal.sh"
)

// Options are the values embedded into the script. Both are validated
// before rendering; nothing unvalidated ever reaches the template.
type Options struct {
	DNS       string
	Interface string // Windows only
}

const windowsScript = `@echo off
echo Setting DNS server to: {{.DNS}}
netsh interface ip set dns "{{.Interface}}" static {{.DNS}}
echo DNS configured.
echo Current DNS configuration:
ipconfig /all | findstr /C:"DNS"
echo.
echo Note: the DNS setting stays in effect after this window is closed.
echo To restore DHCP-assigned DNS run: netsh interface ip set dns "{{.Interface}}" dhcp
echo (or run: dnshell reset)
echo.
cmd /k
`

const linuxScript = `#!/bin/bash
echo "Setting DNS server to: {{.DNS}}"
echo "nameserver {{.DNS}}" | sudo tee /etc/resolv.conf
echo "DNS configured."
echo "Current DNS configuration:"
cat /etc/resolv.conf
echo ""
echo "Note: this setting may be overwritten by a reboot or a network-service restart."
echo "To restore the previous configuration run: sudo dnshell reset"
bash
`

var (
	windowsTmpl = template.Must(template.New("windows").Parse(windowsScript))
	linuxTmpl   = template.Must(template.New("linux").Parse(linuxScript))
)

// Render produces the script text for the given platform. Windows scripts
// use CRLF line endings; Linux scripts use LF.
func Render(p platform.Platform, opts Options) (string, error) {
	if err := validate.DNSAddress(opts.DNS); err != nil {
		return "", fmt.Errorf("invalid dns address: %w", err)
	}

	var b strings.Builder
	switch p {
	case platform.Windows:
		if err := validate.InterfaceName(opts.Interface); err != nil {
			return "", fmt.Errorf("invalid interface name: %w", err)
		}
		if err := windowsTmpl.Execute(&b, opts); err != nil {
			return "", err
		}
		return strings.ReplaceAll(b.String(), "\n", "\r\n"), nil
	case platform.Linux:
		if err := linuxTmpl.Execute(&b, opts); err != nil {
			return "", err
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("no script template for platform %s", p)
	}
}

// FileName returns the fixed artifact name for the platform.
func FileName(p platform.Platform) string {
	if p == platform.Windows {
		return WindowsFileName
	}
	return LinuxFileName
}

// Write renders the script and writes it under dir, overwriting any prior
// file of the same name. It returns the path of the written file.
//
// A Windows batch file containing non-ASCII runes (the default adapter name
// is CJK) is transcoded to GBK so cmd.exe reads it under its default code
// page; ASCII-only scripts are byte-identical in either encoding.
func Write(dir string, p platform.Platform, opts Options) (string, error) {
	text, err := Render(p, opts)
	if err != nil {
		return "", err
	}

	data := []byte(text)
	mode := os.FileMode(0644)

	switch p {
	case platform.Windows:
		if !isASCII(text) {
			data, err = simplifiedchinese.GBK.NewEncoder().Bytes(data)
			if err != nil {
				return "", fmt.Errorf("encode batch script: %w", err)
			}
		}
	case platform.Linux:
		mode = 0755
	}

	path := filepath.Join(dir, FileName(p))
	if err := os.WriteFile(path, data, mode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
