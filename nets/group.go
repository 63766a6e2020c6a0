package nets

import (
	"fmt"
	"net"
	"strconv"

	"github.com/reusee/linecast/cmds"
	"github.com/reusee/linecast/configs"
	"github.com/reusee/linecast/vars"
)

// MaxDatagram is the receive buffer size and the advisory cap on outgoing
// payloads.
const MaxDatagram = 4096

var (
	groupFlag = cmds.Var[string]("-group")
	portFlag  = cmds.Var[int]("-port")
)

// ParseGroup parses an IPv4 multicast group address.
func ParseGroup(str string) (net.IP, error) {
	ip := net.ParseIP(str)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid IP address format: %s", str)
	}
	ip = ip.To4()
	if ip[0] < 224 || ip[0] > 239 {
		return nil, fmt.Errorf("not a multicast address: %s, multicast range: 224.0.0.0 - 239.255.255.255", str)
	}
	return ip, nil
}

// ParsePort parses a port number, all digits, 0-65535.
func ParsePort(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return 0, fmt.Errorf("the port number isn't a number: %s", str)
		}
	}
	port, err := strconv.Atoi(str)
	if err != nil || port > 65535 {
		return 0, fmt.Errorf("invalid port number: %s, valid port range: 0-65535", str)
	}
	return port, nil
}

// ResolveGroupAddr resolves the multicast group address from the -group and
// -port flags, falling back to the group and port config keys.
type ResolveGroupAddr func() (*net.UDPAddr, error)

func (Module) ResolveGroupAddr(
	loader configs.Loader,
) ResolveGroupAddr {
	return func() (*net.UDPAddr, error) {

		groupStr := vars.FirstNonZero(
			*groupFlag,
			configs.First[string](loader, "group"),
		)
		if groupStr == "" {
			return nil, fmt.Errorf("no multicast group, pass -group or set group in the config file")
		}
		group, err := ParseGroup(groupStr)
		if err != nil {
			return nil, err
		}

		port := vars.FirstNonZero(
			*portFlag,
			configs.First[int](loader, "port"),
		)
		if port == 0 {
			return nil, fmt.Errorf("no port, pass -port or set port in the config file")
		}
		if port < 0 || port > 65535 {
			return nil, fmt.Errorf("invalid port number: %d, valid port range: 0-65535", port)
		}

		return &net.UDPAddr{
			IP:   group,
			Port: port,
		}, nil
	}
}
