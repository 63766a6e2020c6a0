package nets

import (
	"strings"
	"testing"
)

func TestParseGroup(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		err   string
	}{
		{input: "239.0.0.1", ok: true},
		{input: "224.0.0.0", ok: true},
		{input: "239.255.255.255", ok: true},
		{input: "223.255.255.255", err: "not a multicast address"},
		{input: "240.0.0.1", err: "not a multicast address"},
		{input: "10.0.0.1", err: "not a multicast address"},
		{input: "not-an-ip", err: "invalid IP address format"},
		{input: "239.0.0", err: "invalid IP address format"},
		{input: "ff02::1", err: "invalid IP address format"},
		{input: "", err: "invalid IP address format"},
	}

	for _, test := range tests {
		ip, err := ParseGroup(test.input)
		if test.ok {
			if err != nil {
				t.Fatalf("%q: %v", test.input, err)
			}
			if ip.String() != test.input {
				t.Fatalf("%q: got %v", test.input, ip)
			}
		} else {
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Fatalf("%q: got %v", test.input, err)
			}
		}
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		input string
		port  int
		err   string
	}{
		{input: "5000", port: 5000},
		{input: "0", port: 0},
		{input: "65535", port: 65535},
		{input: "65536", err: "invalid port number"},
		{input: "123456789", err: "invalid port number"},
		{input: "-1", err: "isn't a number"},
		{input: "50a0", err: "isn't a number"},
		{input: "port", err: "isn't a number"},
	}

	for _, test := range tests {
		port, err := ParsePort(test.input)
		if test.err != "" {
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Fatalf("%q: got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if port != test.port {
			t.Fatalf("%q: got %d", test.input, port)
		}
	}
}
