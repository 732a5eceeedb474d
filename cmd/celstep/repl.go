package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chazu/celstep/compiler"
	"github.com/chazu/celstep/manifest"
	"github.com/chazu/celstep/vm"
	"github.com/chazu/celstep/vm/wire"
)

// stepper is the REPL state: the current source and its program.
type stepper struct {
	out     io.Writer
	cfg     *manifest.Manifest
	source  string
	program *vm.Program
}

// runREPL reads expressions and stepping commands from in. An expression
// line compiles a new program; lines starting with ':' drive it.
func runREPL(in io.Reader, out io.Writer, cfg *manifest.Manifest, initial string) {
	fmt.Fprintln(out, "celstep stepping REPL (type 'exit' to quit, ':help' for commands)")

	st := &stepper{out: out, cfg: cfg}
	if initial == "" {
		initial = cfg.Eval.DefaultSource
	}
	st.compile(initial)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, ">> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit":
			return
		case strings.HasPrefix(line, ":"):
			st.command(line)
		default:
			st.compile(line)
		}
	}
}

func (st *stepper) compile(source string) {
	prog, err := compiler.CompileSourceWithDepth(source, st.cfg.Eval.MaxDepth)
	if err != nil {
		fmt.Fprintln(st.out, err)
		return
	}
	prog.SizeLimit = st.cfg.Eval.SizeLimit
	prog.Trace = st.cfg.Eval.Trace
	st.source = source
	st.program = prog
	fmt.Fprint(st.out, vm.DisassembleProgram(prog))
}

func (st *stepper) command(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	if cmd == ":help" {
		fmt.Fprintln(st.out, "Commands:")
		fmt.Fprintln(st.out, "  :step [n]     Execute n instructions (default 1)")
		fmt.Fprintln(st.out, "  :run          Execute to completion")
		fmt.Fprintln(st.out, "  :reset        Rewind to the first instruction")
		fmt.Fprintln(st.out, "  :stack        Show the stack, top first")
		fmt.Fprintln(st.out, "  :list         Show the instructions and the pointer")
		fmt.Fprintln(st.out, "  :save FILE    Write a snapshot of the paused program")
		fmt.Fprintln(st.out, "  :load FILE    Resume a snapshot")
		fmt.Fprintln(st.out, "Any other line is compiled as a new expression.")
		return
	}
	if cmd == ":load" {
		st.load(args)
		return
	}
	if st.program == nil {
		fmt.Fprintln(st.out, "no program; enter an expression first")
		return
	}

	switch cmd {
	case ":step", ":s":
		n := 1
		if len(args) > 0 {
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 1 {
				fmt.Fprintf(st.out, "bad step count %q\n", args[0])
				return
			}
		}
		for i := 0; i < n && !st.program.Done(); i++ {
			st.program.Step()
		}
		st.printStack()
	case ":run", ":r":
		fmt.Fprintln(st.out, st.program.Run())
	case ":reset":
		st.program.Reset()
		fmt.Fprint(st.out, vm.DisassembleProgram(st.program))
	case ":stack":
		st.printStack()
	case ":list", ":l":
		fmt.Fprint(st.out, vm.DisassembleProgram(st.program))
	case ":save":
		if len(args) != 1 {
			fmt.Fprintln(st.out, "usage: :save FILE")
			return
		}
		data, err := wire.MarshalProgram(st.program, st.source)
		if err == nil {
			err = os.WriteFile(args[0], data, 0644)
		}
		if err != nil {
			fmt.Fprintf(st.out, "save failed: %v\n", err)
			return
		}
		fmt.Fprintf(st.out, "saved %d bytes to %s\n", len(data), args[0])
	default:
		fmt.Fprintf(st.out, "unknown command %s (try :help)\n", cmd)
	}
}

func (st *stepper) load(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(st.out, "usage: :load FILE")
		return
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(st.out, "load failed: %v\n", err)
		return
	}
	prog, source, err := wire.UnmarshalProgram(data)
	if err != nil {
		fmt.Fprintf(st.out, "load failed: %v\n", err)
		return
	}
	st.program, st.source = prog, source
	fmt.Fprintf(st.out, "; %s\n", source)
	fmt.Fprint(st.out, vm.DisassembleProgram(prog))
}

func (st *stepper) printStack() {
	fmt.Fprintf(st.out, "pointer %d", st.program.Pointer())
	if st.program.Done() {
		fmt.Fprint(st.out, " (done)")
	}
	fmt.Fprintln(st.out)
	for _, r := range st.program.Stack() {
		fmt.Fprintf(st.out, "  %s\n", r)
	}
}
