package feeds

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/linecast/cmds"
	"github.com/reusee/linecast/logs"
	"golang.org/x/term"
)

var fileFlag = cmds.Var[string]("-file")

// OpenInput resolves the line source: the -file flag, then piped stdin,
// then an interactive prompt that re-asks until a file opens.
type OpenInput func() (io.ReadCloser, string, error)

func (Module) OpenInput(
	logger logs.Logger,
) OpenInput {
	return func() (io.ReadCloser, string, error) {

		if *fileFlag != "" {
			f, err := os.Open(*fileFlag)
			if err != nil {
				return nil, "", err
			}
			logger.Info("input file",
				"path", *fileFlag,
			)
			return f, *fileFlag, nil
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return io.NopCloser(os.Stdin), "stdin", nil
		}

		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("Enter the data filename: ")
			name, err := reader.ReadString('\n')
			if err != nil {
				return nil, "", err
			}
			name = strings.TrimSpace(name)
			f, err := os.Open(name)
			if err != nil {
				fmt.Printf("Error: Cannot open file %s\n", name)
				continue
			}
			return f, name, nil
		}
	}
}
