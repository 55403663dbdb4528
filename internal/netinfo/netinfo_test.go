package netinfo

import (
	"net/netip"
	"testing"
)

func TestDefaultIndex(t *testing.T) {
	adapters := []Adapter{
		{Name: "docker0", Addrs: []string{"172.17.0.1/16"}},
		{Name: "eth0", Addrs: []string{"192.168.1.42/24", "fe80::1/64"}},
		{Name: "wlan0", Addrs: []string{"10.0.0.7/8"}},
	}

	tests := []struct {
		name string
		gw   string
		want int
	}{
		{name: "home router", gw: "192.168.1.1", want: 1},
		{name: "corp gateway", gw: "10.255.255.254", want: 2},
		{name: "docker bridge", gw: "172.17.0.254", want: 0},
		{name: "no adapter matches", gw: "203.0.113.1", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := netip.MustParseAddr(tt.gw)
			if got := defaultIndex(adapters, gw); got != tt.want {
				t.Errorf("defaultIndex(%s) = %d, want %d", tt.gw, got, tt.want)
			}
		})
	}
}

func TestDefaultIndexSkipsMalformedAddrs(t *testing.T) {
	adapters := []Adapter{
		{Name: "weird", Addrs: []string{"not-a-cidr"}},
		{Name: "eth0", Addrs: []string{"192.168.0.10/24"}},
	}
	if got := defaultIndex(adapters, netip.MustParseAddr("192.168.0.1")); got != 1 {
		t.Errorf("defaultIndex = %d, want 1", got)
	}
}
