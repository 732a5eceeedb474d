// Package vm implements the celstep stack machine.
//
// This package contains:
//   - Runtime values (Value) and their kinds
//   - The evaluation error taxonomy (Error) and operator tags (Operator)
//   - Result, the value-or-error union held on the operand stack
//   - The instruction set (Opcode, Instruction) with mnemonics and tooltips
//   - Program, an instruction sequence with a pointer and an operand stack
//     that can be executed one instruction at a time
//
// Errors are ordinary stack values. Boolean combinators treat true (for Or)
// and false (for And) as absorbing elements, so a determinate operand can
// override an earlier error instead of the error short-circuiting the
// evaluation.
package vm
