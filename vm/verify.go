package vm

import "fmt"

// Verify checks that an instruction sequence is well formed: every opcode is
// known, jumps land inside the program, no path underflows the stack, paths
// that merge agree on stack depth, and every path ends with exactly one
// value on the stack.
func Verify(instructions []Instruction) error {
	_, err := verify(instructions)
	return err
}

// verify returns the stack depth on entry to each instruction (index
// len(instructions) is the exit), or -1 for unreachable instructions.
func verify(instructions []Instruction) ([]int, error) {
	n := len(instructions)
	if n == 0 {
		return nil, fmt.Errorf("vm: empty program")
	}
	depths := make([]int, n+1)
	for i := range depths {
		depths[i] = -1
	}
	depths[0] = 0

	flow := func(from, to, depth int) error {
		if to > n {
			return fmt.Errorf("vm: instruction %d jumps to %d past the end (%d)", from, to, n)
		}
		if depths[to] >= 0 && depths[to] != depth {
			return fmt.Errorf("vm: stack depth %d at instruction %d conflicts with %d", depth, to, depths[to])
		}
		depths[to] = depth
		return nil
	}

	for i, in := range instructions {
		d := depths[i]
		if d < 0 {
			continue
		}
		if !in.Opcode.Valid() {
			return nil, fmt.Errorf("vm: unknown opcode 0x%02X at instruction %d", byte(in.Opcode), i)
		}
		if in.N < 0 {
			return nil, fmt.Errorf("vm: negative operand at instruction %d", i)
		}
		if in.Opcode == OpLit && in.Value == nil {
			return nil, fmt.Errorf("vm: literal without value at instruction %d", i)
		}

		info := GetOpcodeInfo(in.Opcode)
		pop, push := info.StackPop, info.StackPush
		switch in.Opcode {
		case OpMakeList:
			if in.N > d {
				return nil, underflow(i, in, d)
			}
			pop = in.N
		case OpMakeMap:
			if in.N > d/2 {
				return nil, underflow(i, in, d)
			}
			pop = 2 * in.N
		case OpJumpError:
			pop, push = 1, 1
		case OpAbort:
			if err := flow(i, n, 1); err != nil {
				return nil, err
			}
			continue
		}
		if d < pop {
			return nil, underflow(i, in, d)
		}
		next := d - pop + push

		if in.Opcode.IsJump() {
			// Offsets are bounded first so i+N+1 cannot overflow.
			if in.N > n {
				return nil, fmt.Errorf("vm: instruction %d jumps %d past the end (%d)", i, in.N, n)
			}
			if err := flow(i, i+in.N+1, next); err != nil {
				return nil, err
			}
			if in.Opcode == OpJump {
				continue
			}
		}
		if err := flow(i, i+1, next); err != nil {
			return nil, err
		}
	}
	if depths[n] != 1 {
		return nil, fmt.Errorf("vm: program ends with stack depth %d, want 1", depths[n])
	}
	return depths, nil
}

func underflow(i int, in Instruction, depth int) error {
	return fmt.Errorf("vm: stack underflow at instruction %d (%s %d): depth %d", i, in.Short(), in.N, depth)
}
