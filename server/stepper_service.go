package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"

	"github.com/chazu/celstep/compiler"
	celstepv1 "github.com/chazu/celstep/gen/celstep/v1"
	"github.com/chazu/celstep/gen/celstep/v1/celstepv1connect"
	"github.com/chazu/celstep/history"
	"github.com/chazu/celstep/vm"
	"github.com/chazu/celstep/vm/wire"
)

// EvalOptions are the parse and evaluation limits applied to every program
// the service compiles.
type EvalOptions struct {
	MaxDepth      int
	SizeLimit     int
	DefaultSource string
	Trace         bool
}

// StepperService implements the StepperService Connect handler.
type StepperService struct {
	celstepv1connect.UnimplementedStepperServiceHandler
	sessions *SessionStore
	history  history.Store
	opts     EvalOptions
}

// NewStepperService creates a StepperService.
func NewStepperService(sessions *SessionStore, store history.Store, opts EvalOptions) *StepperService {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = compiler.DefaultMaxDepth
	}
	if opts.DefaultSource == "" {
		opts.DefaultSource = "1 + 1"
	}
	return &StepperService{
		sessions: sessions,
		history:  store,
		opts:     opts,
	}
}

// Compile parses and linearizes source into a session's program. Without a
// session ID a new session is created; without source the session's latest
// saved source (or the default source) is used. Parse failures are reported
// in the response, and leave an existing session untouched.
func (s *StepperService) Compile(
	ctx context.Context,
	req *connect.Request[celstepv1.CompileRequest],
) (*connect.Response[celstepv1.CompileResponse], error) {
	id := req.Msg.Session
	source := req.Msg.Source
	if source == "" {
		var err error
		source, err = history.LatestOr(ctx, s.history, id, s.opts.DefaultSource)
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	prog, err := compiler.CompileSourceWithDepth(source, s.opts.MaxDepth)
	if err != nil {
		var perr *compiler.ParseError
		if !errors.As(err, &perr) {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		return connect.NewResponse(&celstepv1.CompileResponse{
			Session:      id,
			ErrorMessage: perr.Error(),
			Line:         int32(perr.Pos.Line),
			Column:       int32(perr.Pos.Column),
		}), nil
	}
	prog.SizeLimit = s.opts.SizeLimit
	prog.Trace = s.opts.Trace

	session, ok := s.sessions.Get(id)
	if !ok {
		session = s.sessions.Create(id)
	}
	session.Lock()
	session.Source = source
	session.Program = prog
	state := sessionState(session)
	session.Unlock()

	if err := s.history.Save(ctx, session.ID, source); err != nil {
		log.Warningf("saving history for %s: %s", session.ID, err)
	}

	return connect.NewResponse(&celstepv1.CompileResponse{
		Success: true,
		Session: session.ID,
		State:   state,
	}), nil
}

// Step executes one instruction.
func (s *StepperService) Step(
	ctx context.Context,
	req *connect.Request[celstepv1.SessionRequest],
) (*connect.Response[celstepv1.ProgramState], error) {
	return s.withProgram(req.Msg.Session, func(session *Session) {
		session.Program.Step()
	})
}

// Run executes the remaining instructions.
func (s *StepperService) Run(
	ctx context.Context,
	req *connect.Request[celstepv1.SessionRequest],
) (*connect.Response[celstepv1.ProgramState], error) {
	return s.withProgram(req.Msg.Session, func(session *Session) {
		session.Program.Run()
	})
}

// State reports the session's program without changing it.
func (s *StepperService) State(
	ctx context.Context,
	req *connect.Request[celstepv1.SessionRequest],
) (*connect.Response[celstepv1.ProgramState], error) {
	return s.withProgram(req.Msg.Session, func(*Session) {})
}

// Reset rewinds the program to its first instruction.
func (s *StepperService) Reset(
	ctx context.Context,
	req *connect.Request[celstepv1.SessionRequest],
) (*connect.Response[celstepv1.ProgramState], error) {
	return s.withProgram(req.Msg.Session, func(session *Session) {
		session.Program.Reset()
	})
}

// Snapshot serializes the session's paused program to CBOR.
func (s *StepperService) Snapshot(
	ctx context.Context,
	req *connect.Request[celstepv1.SessionRequest],
) (*connect.Response[celstepv1.SnapshotResponse], error) {
	session, err := s.program(req.Msg.Session)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()
	data, err := wire.MarshalProgram(session.Program, session.Source)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("snapshot: %w", err))
	}
	return connect.NewResponse(&celstepv1.SnapshotResponse{
		Session:  session.ID,
		Snapshot: data,
	}), nil
}

// Restore resumes a snapshot into a session, creating one unless a session
// ID is given.
func (s *StepperService) Restore(
	ctx context.Context,
	req *connect.Request[celstepv1.RestoreRequest],
) (*connect.Response[celstepv1.ProgramState], error) {
	if len(req.Msg.Snapshot) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("snapshot is required"))
	}
	prog, source, err := wire.UnmarshalProgram(req.Msg.Snapshot)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	prog.Trace = s.opts.Trace

	session := s.sessions.Create(req.Msg.Session)
	session.Lock()
	session.Source = source
	session.Program = prog
	state := sessionState(session)
	session.Unlock()
	return connect.NewResponse(state), nil
}

// History lists the sources a session has compiled, newest first.
func (s *StepperService) History(
	ctx context.Context,
	req *connect.Request[celstepv1.HistoryRequest],
) (*connect.Response[celstepv1.HistoryResponse], error) {
	id := req.Msg.Session
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session is required"))
	}
	entries, err := s.history.List(ctx, id, int(req.Msg.Limit))
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	resp := &celstepv1.HistoryResponse{Session: id}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &celstepv1.HistoryEntry{
			Source:  e.Source,
			SavedAt: e.SavedAt.Format(time.RFC3339Nano),
		})
	}
	return connect.NewResponse(resp), nil
}

// program looks up a compiled session and returns it locked.
func (s *StepperService) program(id string) (*Session, error) {
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session is required"))
	}
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("session %q not found", id))
	}
	session.Lock()
	if session.Program == nil {
		session.Unlock()
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("session %q has no program", id))
	}
	return session, nil
}

// withProgram runs fn on a compiled session under its lock and reports the
// resulting state.
func (s *StepperService) withProgram(id string, fn func(*Session)) (*connect.Response[celstepv1.ProgramState], error) {
	session, err := s.program(id)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()
	fn(session)
	return connect.NewResponse(sessionState(session)), nil
}

// sessionState renders a session's program for display. The caller holds
// the session lock.
func sessionState(session *Session) *celstepv1.ProgramState {
	p := session.Program
	state := &celstepv1.ProgramState{
		Session: session.ID,
		Source:  session.Source,
		Pointer: int32(p.Pointer()),
		Done:    p.Done(),
	}
	for i, in := range p.Instructions() {
		state.Instructions = append(state.Instructions, &celstepv1.Instruction{
			Index:   int32(i),
			Short:   in.Short(),
			Operand: in.Operand(),
			Tooltip: in.Tooltip(),
		})
	}
	stack := p.Stack()
	for _, r := range stack {
		state.Stack = append(state.Stack, stackSlot(r))
	}
	if p.Done() && len(stack) == 1 {
		state.Result = stackSlot(stack[0])
	}
	return state
}

func stackSlot(r vm.Result) *celstepv1.StackSlot {
	if r.Err != nil {
		return &celstepv1.StackSlot{Kind: r.Err.Code.String(), Display: r.Display()}
	}
	return &celstepv1.StackSlot{Ok: true, Kind: r.Value.Kind().String(), Display: r.Display()}
}
