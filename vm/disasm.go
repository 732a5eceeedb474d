package vm

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Disassemble returns a human-readable listing of the instructions: index,
// mnemonic, operand and tooltip, with jump targets resolved.
func Disassemble(instructions []Instruction) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("; %d instructions\n", len(instructions)))

	for i, in := range instructions {
		// Truncate long literals for readability
		operand := truncate(in.Operand(), 32)
		sb.WriteString(fmt.Sprintf("%04d  %-7s %-32s", i, in.Short(), operand))
		if in.Opcode.IsJump() {
			sb.WriteString(fmt.Sprintf(" -> %04d", i+in.N+1))
		} else {
			sb.WriteString("        ")
		}
		sb.WriteString(" ; ")
		sb.WriteString(in.Tooltip())
		sb.WriteString("\n")
	}
	return sb.String()
}

// truncate shortens s to at most limit runes, ending in "..." when cut.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

// DisassembleProgram lists the program's instructions and marks the one at
// the pointer.
func DisassembleProgram(p *Program) string {
	var sb strings.Builder
	lines := strings.Split(strings.TrimSuffix(Disassemble(p.instructions), "\n"), "\n")
	for i, line := range lines {
		// First line is the header.
		if i > 0 && i-1 == p.pointer {
			sb.WriteString("> ")
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if p.Done() {
		sb.WriteString("> (done)\n")
	}
	return sb.String()
}
