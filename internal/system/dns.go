// Package system reads and reverts the host's DNS resolver configuration.
// The generated script performs the actual change; this package covers the
// surrounding lifecycle: what is configured now, a snapshot taken before
// launching, and the revert path the script's hint points at.
package system

// CurrentDNS returns the nameservers the host is configured with.
// Implementation is platform-specific.
func CurrentDNS() ([]string, error) {
	return currentDNS()
}

// Reset restores the resolver configuration recorded by Snapshot, falling
// back to DHCP-assigned DNS where no snapshot exists.
// Implementation is platform-specific.
func Reset() error {
	return reset()
}
