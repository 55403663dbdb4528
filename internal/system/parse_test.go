package system

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseResolvConf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single nameserver",
			input: "nameserver 8.8.8.8\n",
			want:  []string{"8.8.8.8"},
		},
		{
			name: "comments and options ignored",
			input: `# Generated by NetworkManager
search lan
options edns0 trust-ad
nameserver 192.168.1.1
nameserver 1.1.1.1
`,
			want: []string{"192.168.1.1", "1.1.1.1"},
		},
		{
			name:  "indented entries",
			input: "   nameserver 223.5.5.5  \n",
			want:  []string{"223.5.5.5"},
		},
		{
			name:  "empty file",
			input: "",
			want:  nil,
		},
		{
			name:  "no space after keyword is not an entry",
			input: "nameserver8.8.8.8\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseResolvConf(strings.NewReader(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseResolvConf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseNetshInterfaces(t *testing.T) {
	output := `
Idx     Met         MTU          State                Name
---  ----------  ----------  ------------  ---------------------------
  1          75  4294967295  connected     Loopback Pseudo-Interface 1
 12          25        1500  connected     以太网
 15          40        1500  disconnected  Wi-Fi
 23          35        1500  connected     vEthernet (WSL)
`
	got := parseNetshInterfaces(output)
	want := []int{1, 12, 23}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseNetshInterfaces() = %v, want %v", got, want)
	}
}

func TestParseNetshDNSServers(t *testing.T) {
	output := `
Configuration for interface "以太网"
    DNS servers configured through DHCP:  192.168.1.1
                                          8.8.8.8
    Register with which suffix:           Primary only
`
	got := parseNetshDNSServers(output)
	want := []string{"192.168.1.1", "8.8.8.8"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseNetshDNSServers() = %v, want %v", got, want)
	}
}
