package compiler

import "github.com/chazu/celstep/vm"

// Compile linearizes e into a fresh program.
func Compile(e Expr) *vm.Program {
	return vm.New(Linearize(e))
}

// CompileSource parses and compiles source text. The returned error is a
// *ParseError.
func CompileSource(source string) (*vm.Program, error) {
	return CompileSourceWithDepth(source, DefaultMaxDepth)
}

// CompileSourceWithDepth is CompileSource with an explicit nesting limit.
func CompileSourceWithDepth(source string, maxDepth int) (*vm.Program, error) {
	e, err := ParseWithDepth(source, maxDepth)
	if err != nil {
		return nil, err
	}
	return Compile(e), nil
}

// Eval parses, compiles and runs source text.
func Eval(source string) (vm.Result, error) {
	p, err := CompileSource(source)
	if err != nil {
		return vm.Result{}, err
	}
	return p.Run(), nil
}
