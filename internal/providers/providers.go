// Package providers carries the static reference table of well-known
// public DNS services shown during the prompt flow.
package providers

// Provider is one public DNS operator.
type Provider struct {
	Name      string
	Primary   string
	Secondary string
}

// Table returns the reference table in display order.
func Table() []Provider {
	return []Provider{
		{Name: "Google DNS", Primary: "8.8.8.8", Secondary: "8.8.4.4"},
		{Name: "Cloudflare DNS", Primary: "1.1.1.1", Secondary: "1.0.0.1"},
		{Name: "AliDNS", Primary: "223.5.5.5", Secondary: "223.6.6.6"},
		{Name: "Tencent DNS", Primary: "119.29.29.29", Secondary: "182.254.116.116"},
		{Name: "Quad9", Primary: "9.9.9.9", Secondary: "149.112.112.112"},
		{Name: "OpenDNS", Primary: "208.67.222.222", Secondary: "208.67.220.220"},
	}
}
