package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage()
		os.Exit(1)
	}
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}
