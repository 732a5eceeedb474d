package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/chazu/celstep/compiler"
	"github.com/chazu/celstep/vm"
)

type evalOptions struct {
	MaxDepth  int
	SizeLimit int
	Trace     bool
	LogSteps  bool
	Disasm    bool
	Format    string
}

func (o evalOptions) validate() error {
	switch o.Format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", o.Format)
}

// report is the structured form of one evaluation.
type report struct {
	Source      string          `json:"source" yaml:"source"`
	Disassembly []string        `json:"disassembly,omitempty" yaml:"disassembly,omitempty"`
	Steps       []vm.StepRecord `json:"steps,omitempty" yaml:"steps,omitempty"`
	Result      outcome         `json:"result" yaml:"result"`
}

type outcome struct {
	Ok      bool   `json:"ok" yaml:"ok"`
	Kind    string `json:"kind" yaml:"kind"`
	Display string `json:"display" yaml:"display"`
}

func newOutcome(r vm.Result) outcome {
	if r.Err != nil {
		return outcome{Ok: false, Kind: r.Err.Code.String(), Display: r.Display()}
	}
	return outcome{Ok: true, Kind: r.Value.Kind().String(), Display: r.Display()}
}

// evaluate compiles and runs source, writing the report to w. failed is
// true when the expression evaluated to an error; err is set only for
// parse and output failures.
func evaluate(w io.Writer, source string, opts evalOptions) (failed bool, err error) {
	prog, err := compiler.CompileSourceWithDepth(source, opts.MaxDepth)
	if err != nil {
		return false, err
	}
	prog.SizeLimit = opts.SizeLimit
	prog.Trace = opts.LogSteps

	rep := report{Source: source}
	if opts.Disasm {
		for i, in := range prog.Instructions() {
			rep.Disassembly = append(rep.Disassembly, fmt.Sprintf("%04d %s", i, in))
		}
	}

	if opts.Format == "text" && opts.Disasm {
		fmt.Fprint(w, vm.Disassemble(prog.Instructions()))
	}

	var result vm.Result
	if opts.Trace {
		result, rep.Steps = prog.RunTraced()
	} else {
		result = prog.Run()
	}
	rep.Result = newOutcome(result)

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(rep)
		if err == nil {
			err = enc.Close()
		}
	default:
		for _, step := range rep.Steps {
			fmt.Fprintln(w, formatStep(step))
		}
		_, err = fmt.Fprintln(w, result)
	}
	return result.IsErr(), err
}

// formatStep renders one trace line: index, instruction, and the stack
// after it, top first.
func formatStep(s vm.StepRecord) string {
	return fmt.Sprintf("[%04d] %-24s -> %04d  %v", s.Index, s.Instruction, s.Pointer, s.Stack)
}
