package platform

import "testing"

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		name string
		goos string
		want Platform
	}{
		{name: "windows", goos: "windows", want: Windows},
		{name: "linux", goos: "linux", want: Linux},
		{name: "darwin is unsupported", goos: "darwin", want: Unsupported},
		{name: "freebsd is unsupported", goos: "freebsd", want: Unsupported},
		{name: "empty string is unsupported", goos: "", want: Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromGOOS(tt.goos); got != tt.want {
				t.Errorf("FromGOOS(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if Windows.String() != "windows" || Linux.String() != "linux" || Unsupported.String() != "unsupported" {
		t.Errorf("unexpected String() values: %q %q %q", Windows, Linux, Unsupported)
	}
}
