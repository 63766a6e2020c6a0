package nets

import (
	"context"
	"fmt"
	"net"

	"github.com/reusee/linecast/configs"
	"github.com/reusee/linecast/logs"
	"golang.org/x/net/ipv4"
)

// Receiver binds the group port with address reuse, joins the multicast
// group, and returns one datagram per Recv call.
type Receiver struct {
	conn  net.PacketConn
	pconn *ipv4.PacketConn
	addr  *net.UDPAddr
	iface *net.Interface
	buf   []byte
}

type NewReceiver func(ctx context.Context) (*Receiver, error)

func (Module) NewReceiver(
	resolveGroupAddr ResolveGroupAddr,
	loader configs.Loader,
	logger logs.Logger,
) NewReceiver {
	return func(ctx context.Context) (*Receiver, error) {

		addr, err := resolveGroupAddr()
		if err != nil {
			return nil, err
		}

		// multiple receivers may share the port
		listenConfig := net.ListenConfig{
			Control: reuseControl,
		}
		conn, err := listenConfig.ListenPacket(ctx, "udp4",
			fmt.Sprintf("0.0.0.0:%d", addr.Port))
		if err != nil {
			return nil, err
		}

		var iface *net.Interface
		if name := configs.First[string](loader, "interface"); name != "" {
			iface, err = net.InterfaceByName(name)
			if err != nil {
				conn.Close()
				return nil, fmt.Errorf("interface %s: %w", name, err)
			}
		}

		pconn := ipv4.NewPacketConn(conn)
		if err := pconn.JoinGroup(iface, &net.UDPAddr{IP: addr.IP}); err != nil {
			conn.Close()
			return nil, logs.WrapSpan(ctx,
				fmt.Errorf("join multicast group %s: %w", addr.IP, err))
		}

		logger.InfoContext(ctx, "receiver ready",
			"group", addr.String(),
		)

		return &Receiver{
			conn:  conn,
			pconn: pconn,
			addr:  addr,
			iface: iface,
			buf:   make([]byte, MaxDatagram),
		}, nil
	}
}

func (r *Receiver) Addr() *net.UDPAddr {
	return r.addr
}

// Recv blocks for one datagram, truncated at MaxDatagram bytes. The
// returned slice is the caller's to keep.
func (r *Receiver) Recv() ([]byte, *net.UDPAddr, error) {
	n, from, err := r.conn.ReadFrom(r.buf)
	if err != nil {
		return nil, nil, err
	}
	payload := make([]byte, n)
	copy(payload, r.buf[:n])
	return payload, from.(*net.UDPAddr), nil
}

func (r *Receiver) Close() error {
	r.pconn.LeaveGroup(r.iface, &net.UDPAddr{IP: r.addr.IP})
	return r.conn.Close()
}
