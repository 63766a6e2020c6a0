package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/linecast/cmds"
	"github.com/reusee/linecast/displays"
	"github.com/reusee/linecast/logs"
	"github.com/reusee/linecast/modes"
	"github.com/reusee/linecast/nets"
	"github.com/reusee/linecast/wires"
)

var debugFlag = cmds.Switch("-debug")

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newReceiver nets.NewReceiver,
	) {

		receiver, err := newReceiver(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer receiver.Close()

		// unblock Recv on shutdown
		stop := context.AfterFunc(ctx, func() {
			receiver.Close()
		})
		defer stop()

		fmt.Println("========================SETUP========================")
		fmt.Printf("Socket created, joined multicast group %s on port %d...\n",
			receiver.Addr().IP, receiver.Addr().Port)
		fmt.Println("=====================================================")
		fmt.Println()

		for {
			payload, from, err := receiver.Recv()
			if err != nil {
				if ctx.Err() != nil {
					break
				}
				logger.ErrorContext(ctx, "recv",
					"error", err,
				)
				continue
			}

			recvCtx, _ := newSpan(ctx, "")

			displays.Banner(os.Stdout, fmt.Sprintf("%s:%d", from.IP, from.Port))

			record, err := wires.Decode(payload)
			if err != nil {
				fmt.Printf("Invalid JSON received: %s\n", payload)
				logger.WarnContext(recvCtx, "datagram discarded",
					"from", from.String(),
					"error", err,
				)
			} else if *debugFlag {
				if err := displays.RenderDebug(os.Stdout, payload); err != nil {
					logger.WarnContext(recvCtx, "render",
						"error", err,
					)
				}
			} else {
				displays.Render(os.Stdout, record, displays.FormatServer)
			}

			displays.BannerEnd(os.Stdout)
		}

		logger.Info("shutdown")
	})
}
