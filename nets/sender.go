package nets

import (
	"context"
	"errors"
	"net"

	"github.com/reusee/linecast/cmds"
	"github.com/reusee/linecast/configs"
	"github.com/reusee/linecast/logs"
	"github.com/reusee/linecast/vars"
	"golang.org/x/net/ipv4"
)

var ttlFlag = cmds.Var[int]("-ttl")

// Sender transmits one datagram per Send call to a multicast group.
type Sender struct {
	conn   *net.UDPConn
	addr   *net.UDPAddr
	logger logs.Logger
}

type NewSender func(ctx context.Context) (*Sender, error)

func (Module) NewSender(
	resolveGroupAddr ResolveGroupAddr,
	loader configs.Loader,
	logger logs.Logger,
) NewSender {
	return func(ctx context.Context) (*Sender, error) {

		addr, err := resolveGroupAddr()
		if err != nil {
			return nil, err
		}

		conn, err := net.DialUDP("udp4", nil, addr)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}

		pconn := ipv4.NewPacketConn(conn)

		ttl := vars.FirstNonZero(
			*ttlFlag,
			configs.First[int](loader, "ttl"),
			1,
		)
		if err := pconn.SetMulticastTTL(ttl); err != nil {
			logger.WarnContext(ctx, "set multicast ttl",
				"error", err,
			)
		}

		loopback := true
		if err := loader.AssignFirst("loopback", &loopback); err != nil &&
			!errors.Is(err, configs.ErrValueNotFound) {
			conn.Close()
			return nil, err
		}
		if err := pconn.SetMulticastLoopback(loopback); err != nil {
			logger.WarnContext(ctx, "set multicast loopback",
				"error", err,
			)
		}

		logger.InfoContext(ctx, "sender ready",
			"group", addr.String(),
			"ttl", ttl,
			"loopback", loopback,
		)

		return &Sender{
			conn:   conn,
			addr:   addr,
			logger: logger,
		}, nil
	}
}

func (s *Sender) Addr() *net.UDPAddr {
	return s.addr
}

// Send transmits one datagram. Oversized payloads are still sent, the
// receiver will truncate them.
func (s *Sender) Send(ctx context.Context, payload []byte) error {
	if len(payload) > MaxDatagram {
		s.logger.WarnContext(ctx, "oversized datagram",
			"size", len(payload),
			"max", MaxDatagram,
		)
	}
	_, err := s.conn.Write(payload)
	return err
}

func (s *Sender) Close() error {
	return s.conn.Close()
}
