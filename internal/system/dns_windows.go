//go:build windows

package system

import (
	"fmt"
	"os/exec"
)

func currentDNS() ([]string, error) {
	interfaces, err := connectedInterfaces()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var servers []string
	for _, iface := range interfaces {
		dns, err := dnsForInterface(iface)
		if err != nil {
			continue
		}
		for _, s := range dns {
			if !seen[s] {
				seen[s] = true
				servers = append(servers, s)
			}
		}
	}
	return servers, nil
}

// snapshot records the static DNS servers per connected interface.
func snapshot() error {
	interfaces, err := connectedInterfaces()
	if err != nil {
		return err
	}

	snap := &DNSSnapshot{
		Windows: &WindowsSnapshot{Interfaces: make(map[int][]string)},
	}
	for _, iface := range interfaces {
		if current, err := dnsForInterface(iface); err == nil && len(current) > 0 {
			snap.Windows.Interfaces[iface] = current
		}
	}
	return saveSnapshot(snap)
}

// reset restores each interface from the snapshot, or switches it back to
// DHCP-assigned DNS when nothing was recorded for it.
func reset() error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	interfaces, err := connectedInterfaces()
	if err != nil {
		return err
	}

	for _, iface := range interfaces {
		var original []string
		if snap != nil && snap.Windows != nil {
			original = snap.Windows.Interfaces[iface]
		}

		if len(original) > 0 {
			cmd := exec.Command("netsh", "interface", "ipv4", "set", "dnsservers",
				fmt.Sprintf("name=%d", iface),
				"source=static",
				fmt.Sprintf("address=%s", original[0]),
				"validate=no")
			if output, err := cmd.CombinedOutput(); err != nil {
				return fmt.Errorf("restore DNS for interface %d: %s: %w", iface, string(output), err)
			}
			for i := 1; i < len(original); i++ {
				exec.Command("netsh", "interface", "ipv4", "add", "dnsservers",
					fmt.Sprintf("name=%d", iface),
					fmt.Sprintf("address=%s", original[i]),
					"validate=no").Run()
			}
		} else {
			cmd := exec.Command("netsh", "interface", "ipv4", "set", "dnsservers",
				fmt.Sprintf("name=%d", iface),
				"source=dhcp")
			if output, err := cmd.CombinedOutput(); err != nil {
				return fmt.Errorf("reset DNS for interface %d: %s: %w", iface, string(output), err)
			}
		}
	}

	// Flush so the revert takes effect immediately.
	exec.Command("ipconfig", "/flushdns").Run()

	return clearSnapshot()
}

func connectedInterfaces() ([]int, error) {
	output, err := exec.Command("netsh", "interface", "ipv4", "show", "interfaces").Output()
	if err != nil {
		return nil, err
	}
	return parseNetshInterfaces(string(output)), nil
}

func dnsForInterface(iface int) ([]string, error) {
	output, err := exec.Command("netsh", "interface", "ipv4", "show", "dnsservers",
		fmt.Sprintf("name=%d", iface)).Output()
	if err != nil {
		return nil, err
	}
	return parseNetshDNSServers(string(output)), nil
}
