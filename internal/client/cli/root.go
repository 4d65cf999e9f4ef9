package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	if a.lastStatus == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.lastStatus)
}

// Root runs the command loop. The prompt is suppressed when stdin is not a
// terminal so the console stays usable in pipes and scripts.
func (a *App) Root(ctx context.Context) {

	if name, err := a.ctrl.ActiveUser(ctx); err == nil && name != "" {
		printlnFn(fmt.Sprintf("Welcome back, %s!", name))
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	printlnFn("userdesk console (type 'help' for commands)")

	for {
		if interactive {
			fmt.Printf("userdesk %s> ", a.getStatus())
		}

		line, err := a.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err == io.EOF {
				return
			}
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, add, edit, delete, report, whoami, exit")

		case "l", "list":
			a.list(ctx)

		case "add":
			a.add(ctx)

		case "edit":
			a.edit(ctx)

		case "delete", "del":
			a.delete(ctx)

		case "report":
			a.report(ctx)

		case "whoami":
			a.whoami(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err == io.EOF {
			return
		}
	}
}
