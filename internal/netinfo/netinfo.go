// Package netinfo enumerates the host's network adapters and marks the one
// carrying the default route, so the prompt flow can offer real adapter
// names instead of guessing.
package netinfo

import (
	"net"
	"net/netip"

	"github.com/jackpal/gateway"
)

// Adapter describes one network interface.
type Adapter struct {
	Name    string
	Up      bool
	Default bool     // adapter whose subnet contains the default gateway
	Addrs   []string // CIDR notation
}

// Adapters lists the host's non-loopback interfaces. The default-gateway
// adapter is marked best-effort; discovery failure leaves no mark.
func Adapters() ([]Adapter, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var adapters []Adapter
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		a := Adapter{
			Name: iface.Name,
			Up:   iface.Flags&net.FlagUp != 0,
		}
		if addrs, err := iface.Addrs(); err == nil {
			for _, addr := range addrs {
				a.Addrs = append(a.Addrs, addr.String())
			}
		}
		adapters = append(adapters, a)
	}

	if gw, err := gateway.DiscoverGateway(); err == nil {
		if gwAddr, ok := netip.AddrFromSlice(gw); ok {
			if i := defaultIndex(adapters, gwAddr.Unmap()); i >= 0 {
				adapters[i].Default = true
			}
		}
	}

	return adapters, nil
}

// DefaultName returns the name of the default-gateway adapter, or "" when
// it cannot be determined.
func DefaultName() string {
	adapters, err := Adapters()
	if err != nil {
		return ""
	}
	for _, a := range adapters {
		if a.Default {
			return a.Name
		}
	}
	return ""
}

// defaultIndex finds the adapter whose subnet contains gw. Pure so the
// matching logic is testable with fabricated interface data.
func defaultIndex(adapters []Adapter, gw netip.Addr) int {
	for i, a := range adapters {
		for _, cidr := range a.Addrs {
			prefix, err := netip.ParsePrefix(cidr)
			if err != nil {
				continue
			}
			if prefix.Contains(gw) {
				return i
			}
		}
	}
	return -1
}
