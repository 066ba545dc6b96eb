package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

// CommandKind enumerates what an input line can ask the runner to do
type CommandKind int

const (
	CommandPause CommandKind = iota
	CommandStep
	CommandToggle
	CommandClear
	CommandReseed
	CommandQuit
)

// Command is a single user request; Cell is only meaningful for CommandToggle
type Command struct {
	Kind CommandKind
	Cell model.Cell
}

// ErrUnknownCommand is the cause of every ParseCommand failure
var ErrUnknownCommand = errors.New("unknown command")

const commandHelp = "commands: p(ause) | s(tep) | t(oggle) X Y | c(lear) | r(eseed) | q(uit)"

// ParseCommand turns one input line into a Command
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, errors.Wrap(ErrUnknownCommand, "[ParseCommand] empty line")
	}

	var kind CommandKind
	switch strings.ToLower(fields[0]) {
	case "p", "pause":
		kind = CommandPause
	case "s", "step":
		kind = CommandStep
	case "t", "toggle":
		return parseToggle(fields[1:])
	case "c", "clear":
		kind = CommandClear
	case "r", "reseed":
		kind = CommandReseed
	case "q", "quit":
		kind = CommandQuit
	default:
		return Command{}, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] %q", fields[0])
	}

	if len(fields) > 1 {
		return Command{}, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] %q takes no arguments", fields[0])
	}
	return Command{Kind: kind}, nil
}

func parseToggle(args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, errors.Wrap(ErrUnknownCommand, "[ParseCommand] toggle needs X and Y")
	}

	x, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil {
		return Command{}, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] bad X %q", args[0])
	}
	y, err := strconv.ParseUint(args[1], 10, 0)
	if err != nil {
		return Command{}, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] bad Y %q", args[1])
	}
	return Command{Kind: CommandToggle, Cell: model.Cell{X: uint(x), Y: uint(y)}}, nil
}

// ReadCommands parses r line by line into cmds until EOF or ctx is done, then closes cmds.
// Lines that fail to parse are reported to errOut and skipped.
func ReadCommands(ctx context.Context, r io.Reader, cmds chan<- Command, errOut io.Writer) error {
	defer close(cmds)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(errOut, "%v\n%s\n", err, commandHelp)
			continue
		}

		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
	return errors.Wrap(scanner.Err(), "[ReadCommands] failed to read input")
}
