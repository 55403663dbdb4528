// Package dnscheck probes a candidate DNS server before the user commits
// to it: an ICMP/UDP ping for basic reachability and a real A query to
// confirm the address actually resolves names.
package dnscheck

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	probing "github.com/prometheus-community/pro-bing"
)

const (
	// probeDomain is a stable name every public resolver can answer.
	probeDomain = "example.com."

	pingCount   = 3
	pingTimeout = 3 * time.Second
	dnsTimeout  = 3 * time.Second
)

// Result reports the outcome of both probes.
type Result struct {
	Server string

	PingOK   bool
	PingRTT  time.Duration
	PingLoss float64

	QueryOK  bool
	QueryRTT time.Duration
	Answers  []string
	QueryErr string
}

// Probe pings server and sends it an A query for a well-known name. A dead
// ping alone is not fatal (many resolvers drop ICMP); the query verdict is
// the one that matters.
func Probe(ctx context.Context, server string) (*Result, error) {
	res := &Result{Server: server}

	pinger, err := probing.NewPinger(server)
	if err != nil {
		return nil, fmt.Errorf("ping setup: %w", err)
	}
	pinger.Count = pingCount
	pinger.Timeout = pingTimeout
	if err := pinger.RunWithContext(ctx); err == nil {
		stats := pinger.Statistics()
		res.PingLoss = stats.PacketLoss
		if stats.PacketsRecv > 0 {
			res.PingOK = true
			res.PingRTT = stats.AvgRtt
		}
	}

	m := newQuery(probeDomain)
	c := &dns.Client{Timeout: dnsTimeout}
	in, rtt, err := c.ExchangeContext(ctx, m, net.JoinHostPort(server, "53"))
	if err != nil {
		res.QueryErr = err.Error()
		return res, nil
	}

	res.QueryRTT = rtt
	if in.Rcode != dns.RcodeSuccess {
		res.QueryErr = dns.RcodeToString[in.Rcode]
		return res, nil
	}

	res.QueryOK = true
	for _, rr := range in.Answer {
		switch a := rr.(type) {
		case *dns.A:
			res.Answers = append(res.Answers, a.A.String())
		case *dns.AAAA:
			res.Answers = append(res.Answers, a.AAAA.String())
		}
	}
	return res, nil
}

// newQuery builds a recursive A query for name.
func newQuery(name string) *dns.Msg {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), dns.TypeA)
	m.RecursionDesired = true
	return m
}
