package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintln(os.Stdout, "commands:")
	printCommands(os.Stdout, p.commands, 1)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases point at the same Command, print each once under its first name
	seen := make(map[*Command]bool)
	names := slices.Sorted(maps.Keys(commands))
	for _, name := range names {
		command := commands[name]
		if seen[command] {
			continue
		}
		seen[command] = true

		fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), name)
		if len(command.Aliases) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(command.Aliases, ", "))
		}
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
