package wire

import (
	"fmt"

	"github.com/chazu/celstep/vm"
)

func encodeInstruction(in vm.Instruction) Instruction {
	out := Instruction{
		Opcode:   uint8(in.Opcode),
		N:        in.N,
		Operator: string(in.Operator),
		Name:     string(in.Name),
	}
	if in.Value != nil {
		v := EncodeValue(in.Value)
		out.Value = &v
	}
	return out
}

func decodeInstruction(in Instruction) (vm.Instruction, error) {
	out := vm.Instruction{
		Opcode:   vm.Opcode(in.Opcode),
		N:        in.N,
		Operator: vm.Operator(in.Operator),
		Name:     vm.Identifier(in.Name),
	}
	if !out.Opcode.Valid() {
		return out, fmt.Errorf("unknown opcode 0x%02X", in.Opcode)
	}
	if in.Value != nil {
		v, err := DecodeValue(*in.Value)
		if err != nil {
			return out, err
		}
		out.Value = v
	}
	return out, nil
}

func encodeResult(r vm.Result) Result {
	if r.Err != nil {
		e := r.Err
		out := &Error{
			Code:     uint8(e.Code),
			Name:     string(e.Name),
			Key:      e.Key,
			Kind:     uint8(e.Kind),
			Kind2:    uint8(e.Kind2),
			Arity:    e.Arity,
			Operator: string(e.Operator),
		}
		for _, k := range e.ArgKinds {
			out.ArgKinds = append(out.ArgKinds, uint8(k))
		}
		return Result{Err: out}
	}
	v := EncodeValue(r.Value)
	return Result{Value: &v}
}

func decodeResult(r Result) (vm.Result, error) {
	switch {
	case r.Err != nil && r.Value == nil:
		e := r.Err
		out := &vm.Error{
			Code:     vm.ErrorCode(e.Code),
			Name:     vm.Identifier(e.Name),
			Key:      e.Key,
			Kind:     vm.Kind(e.Kind),
			Kind2:    vm.Kind(e.Kind2),
			Arity:    e.Arity,
			Operator: vm.Operator(e.Operator),
		}
		for _, k := range e.ArgKinds {
			out.ArgKinds = append(out.ArgKinds, vm.Kind(k))
		}
		if out.Code > vm.ErrAborted {
			return vm.Result{}, fmt.Errorf("unknown error code %d", e.Code)
		}
		return vm.Fail(out), nil
	case r.Value != nil && r.Err == nil:
		v, err := DecodeValue(*r.Value)
		if err != nil {
			return vm.Result{}, err
		}
		return vm.Ok(v), nil
	}
	return vm.Result{}, fmt.Errorf("result must hold exactly one of value or error")
}

// EncodeValue converts a runtime value to its wire form.
func EncodeValue(v vm.Value) Value {
	out := Value{Kind: uint8(v.Kind())}
	switch v := v.(type) {
	case vm.I64:
		out.Int = int64(v)
	case vm.F64:
		out.Float = float64(v)
	case vm.Bool:
		out.Bool = bool(v)
	case vm.Str:
		out.Str = string(v)
	case vm.Bytes:
		out.Bytes = append([]byte(nil), v...)
	case vm.List:
		out.List = make([]Value, len(v))
		for i, elem := range v {
			out.List[i] = EncodeValue(elem)
		}
	case vm.Map:
		out.Map = make(map[string]Value, len(v))
		for k, elem := range v {
			out.Map[k] = EncodeValue(elem)
		}
	}
	return out
}

// DecodeValue converts a wire value back to a runtime value.
func DecodeValue(v Value) (vm.Value, error) {
	switch vm.Kind(v.Kind) {
	case vm.KindI64:
		return vm.I64(v.Int), nil
	case vm.KindF64:
		return vm.F64(v.Float), nil
	case vm.KindBool:
		return vm.Bool(v.Bool), nil
	case vm.KindString:
		return vm.Str(v.Str), nil
	case vm.KindBytes:
		return vm.Bytes(append([]byte{}, v.Bytes...)), nil
	case vm.KindList:
		out := make(vm.List, len(v.List))
		for i, elem := range v.List {
			d, err := DecodeValue(elem)
			if err != nil {
				return nil, err
			}
			out[i] = d
		}
		return out, nil
	case vm.KindMap:
		out := make(vm.Map, len(v.Map))
		for k, elem := range v.Map {
			d, err := DecodeValue(elem)
			if err != nil {
				return nil, err
			}
			out[k] = d
		}
		return out, nil
	case vm.KindNull:
		return vm.Null{}, nil
	}
	return nil, fmt.Errorf("unknown value kind %d", v.Kind)
}
