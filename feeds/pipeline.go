package feeds

import (
	"context"
	"iter"

	"github.com/reusee/linecast/cmds"
	"github.com/reusee/linecast/configs"
	"github.com/reusee/linecast/linelang"
	"github.com/reusee/linecast/syncs"
	"github.com/reusee/linecast/vars"
)

var jobsFlag = cmds.Var[int]("-jobs")

// Outcome is the result of parsing one line. Blank lines produce no
// Outcome at all.
type Outcome struct {
	Line   int
	Text   string
	Record linelang.Record
	Err    error
}

// ParseLines parses lines with bounded concurrency, delivering outcomes in
// input order. Each parse call only touches its own line, so fanning out is
// safe.
type ParseLines func(ctx context.Context, lines iter.Seq2[int, string]) iter.Seq[Outcome]

func (Module) ParseLines(
	loader configs.Loader,
) ParseLines {

	jobs := vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		1,
	)
	parser := linelang.Parser{
		MaxToken: configs.First[int](loader, "max_token"),
	}

	return func(ctx context.Context, lines iter.Seq2[int, string]) iter.Seq[Outcome] {
		return func(yield func(Outcome) bool) {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			sem := syncs.NewSemaphore(jobs)
			results := make(chan chan Outcome, jobs)

			go func() {
				defer close(results)
				for num, text := range lines {
					if ctx.Err() != nil {
						return
					}
					ch := make(chan Outcome, 1)
					results <- ch
					sem.Acquire()
					go func() {
						defer sem.Release()
						record, err := parser.Parse(text)
						ch <- Outcome{
							Line:   num,
							Text:   text,
							Record: record,
							Err:    err,
						}
					}()
				}
			}()

			drain := func() {
				go func() {
					for ch := range results {
						<-ch
					}
				}()
			}

			for ch := range results {
				outcome := <-ch
				if outcome.Record == nil && outcome.Err == nil {
					// blank line
					continue
				}
				if !yield(outcome) {
					drain()
					return
				}
				if ctx.Err() != nil {
					drain()
					return
				}
			}
		}
	}
}
