package system

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// parseResolvConf extracts nameserver entries from resolv.conf content.
func parseResolvConf(r io.Reader) []string {
	var servers []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "nameserver ") {
			server := strings.TrimSpace(strings.TrimPrefix(line, "nameserver "))
			if server != "" {
				servers = append(servers, server)
			}
		}
	}
	return servers
}

// parseNetshInterfaces extracts the indices of connected interfaces from
// the output of "netsh interface ipv4 show interfaces".
func parseNetshInterfaces(output string) []int {
	var interfaces []int
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		if fields[3] != "connected" {
			continue
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		interfaces = append(interfaces, idx)
	}
	return interfaces
}

// parseNetshDNSServers extracts IPv4 server addresses from the output of
// "netsh interface ipv4 show dnsservers".
func parseNetshDNSServers(output string) []string {
	var servers []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if strings.Count(line, ".") == 3 && !strings.Contains(line, " ") {
			servers = append(servers, line)
		}
	}
	return servers
}
