package providers

import (
	"net/netip"
	"testing"
)

func TestTableAddressesParse(t *testing.T) {
	table := Table()
	if len(table) == 0 {
		t.Fatal("provider table is empty")
	}
	for _, p := range table {
		if p.Name == "" {
			t.Error("provider with empty name")
		}
		for _, addr := range []string{p.Primary, p.Secondary} {
			if _, err := netip.ParseAddr(addr); err != nil {
				t.Errorf("%s: %q is not a valid address: %v", p.Name, addr, err)
			}
		}
	}
}

func TestTableContainsOriginalEntries(t *testing.T) {
	want := map[string]bool{"8.8.8.8": false, "1.1.1.1": false, "223.5.5.5": false, "119.29.29.29": false}
	for _, p := range Table() {
		if _, ok := want[p.Primary]; ok {
			want[p.Primary] = true
		}
	}
	for addr, seen := range want {
		if !seen {
			t.Errorf("provider table is missing %s", addr)
		}
	}
}
