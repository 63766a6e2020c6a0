package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/linecast/cmds"
	"github.com/reusee/linecast/debugs"
	"github.com/reusee/linecast/displays"
	"github.com/reusee/linecast/feeds"
	"github.com/reusee/linecast/linelang"
	"github.com/reusee/linecast/logs"
	"github.com/reusee/linecast/modes"
	"github.com/reusee/linecast/nets"
	"github.com/reusee/linecast/wires"
)

var (
	debugFlag   = cmds.Switch("-debug")
	inspectFlag = cmds.Switch("-inspect")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		openInput feeds.OpenInput,
		parseLines feeds.ParseLines,
		newSender nets.NewSender,
		tap debugs.Tap,
	) {

		sender, err := newSender(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer sender.Close()

		input, name, err := openInput()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer input.Close()

		logger.InfoContext(ctx, "sending",
			"file", name,
			"group", sender.Addr().String(),
		)

		var sent, skipped int
		discards := make(map[string]int)
		var records []any

		for outcome := range parseLines(ctx, feeds.Lines(input)) {
			if outcome.Err != nil {
				logger.WarnContext(ctx, "line discarded",
					"line", outcome.Line,
					"error", outcome.Err,
				)
				skipped++
				discards[discardReason(outcome.Err)]++
				continue
			}

			payload := wires.Encode(outcome.Record)
			if *debugFlag {
				ce(displays.RenderDebug(os.Stdout, payload))
			} else {
				displays.Render(os.Stdout, outcome.Record, displays.FormatClient)
			}

			ce(sender.Send(ctx, payload))
			sent++

			if *inspectFlag {
				records = append(records, recordToAny(outcome.Record))
			}
		}

		logger.InfoContext(ctx, "done",
			"sent", sent,
			"skipped", skipped,
		)

		if *inspectFlag {
			tap(ctx, "records", map[string]any{
				"sent":     sent,
				"skipped":  skipped,
				"discards": discards,
				"records":  records,
			})
		}
	})
}

// discardReason names a parse failure by its sentinel, for counting.
func discardReason(err error) string {
	var parseErr *linelang.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Err.Error()
	}
	return err.Error()
}

// recordToAny flattens a record into pair lists, keeping duplicate keys and
// order, for the starlark tap.
func recordToAny(record linelang.Record) []any {
	var pairs []any
	for _, pair := range record {
		var value any
		switch pair.Value.Kind() {
		case linelang.KindString:
			value = pair.Value.Text()
		case linelang.KindBool:
			value = pair.Value.Bool()
		case linelang.KindNumber:
			value = pair.Value.Num()
		}
		pairs = append(pairs, []any{pair.Key, value})
	}
	return pairs
}
