package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calculator session",
		Long: `Start an interactive session that evaluates one command per line.

Commands:
  add <a> <b>              Add two integers
  prime <n>                Check whether n is prime
  primes <n> [count|table] List primes up to n
  help                     Show this help message
  quit / exit              Leave the session

Negative numbers need no -- inside the session. History is kept in
repl.history_file when it is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)
	eval := &replEvaluator{cc: cc}
	prompt := cc.Cfg.REPL.Prompt

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cc.Cfg.REPL.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "leapcalc REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type help for commands, quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	cc.Logger.Debug("repl started", "history_file", cc.Cfg.REPL.HistoryFile)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		quit, err := eval.Eval(line)
		if err != nil {
			cc.Renderer.Error(err)
		}
		if quit {
			break
		}
	}

	return nil
}

// replEvaluator runs one REPL line against the shared command evaluators.
type replEvaluator struct {
	cc *CommandContext
}

// Eval evaluates a single line. quit is true when the session should end.
func (e *replEvaluator) Eval(line string) (quit bool, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "quit", "exit":
		return true, nil

	case "help":
		printREPLHelp(e.cc.Renderer.Out())
		return false, nil

	case "add":
		if len(args) != 2 {
			return false, errors.New("usage: add <a> <b>")
		}
		return false, evalAdd(e.cc, args[0], args[1])

	case "prime", "is-prime":
		if len(args) != 1 {
			return false, errors.New("usage: prime <n>")
		}
		return false, evalPrime(e.cc, args[0])

	case "primes":
		if len(args) < 1 || len(args) > 2 {
			return false, errors.New("usage: primes <n> [count|table]")
		}
		opts := &PrimesOptions{}
		if len(args) == 2 {
			switch strings.ToLower(args[1]) {
			case "count":
				opts.Count = true
			case "table":
				opts.Table = true
			default:
				return false, fmt.Errorf("unknown primes option %q (expected count or table)", args[1])
			}
		}
		return false, evalPrimes(e.cc, args[0], opts)

	default:
		return false, fmt.Errorf("unknown command: %s (type help for commands)", command)
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  add <a> <b>              Add two integers
  prime <n>                Check whether n is prime
  primes <n> [count|table] List primes up to n
  help                     Show this help message
  quit / exit              Leave the session

Tips:
  - Use arrow keys to navigate history
  - Tab completion works for command names
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter creates a readline completer for REPL commands.
func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("prime"),
		readline.PcItem("primes"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
		readline.PcItem("exit"),
	)
}
