package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"

	celstepv1 "github.com/chazu/celstep/gen/celstep/v1"
	"github.com/chazu/celstep/gen/celstep/v1/celstepv1connect"
	"github.com/chazu/celstep/history"
)

// ---------------------------------------------------------------------------
// Shared test infrastructure for server package tests.
// ---------------------------------------------------------------------------

func bg() context.Context { return context.Background() }

func connectReq[T any](msg *T) *connect.Request[T] {
	return connect.NewRequest(msg)
}

// testClient starts a StepperServer behind httptest with an in-memory
// history store and returns a client for it.
func testClient(t *testing.T, eval EvalOptions, opts ...connect.ClientOption) celstepv1connect.StepperServiceClient {
	t.Helper()
	s := New(Config{Eval: eval}, history.NewMemoryStore())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		s.Stop()
	})
	return celstepv1connect.NewStepperServiceClient(ts.Client(), ts.URL, opts...)
}

// compile compiles source into a new session, failing the test on error or
// parse failure.
func compile(t *testing.T, client celstepv1connect.StepperServiceClient, source string) *celstepv1.ProgramState {
	t.Helper()
	resp, err := client.Compile(bg(), connectReq(&celstepv1.CompileRequest{Source: source}))
	if err != nil {
		t.Fatalf("Compile(%q): %v", source, err)
	}
	if !resp.Msg.Success {
		t.Fatalf("Compile(%q): %s", source, resp.Msg.ErrorMessage)
	}
	return resp.Msg.State
}

// sessionCall invokes a per-session procedure, failing the test on error.
func sessionCall(
	t *testing.T,
	fn func(context.Context, *connect.Request[celstepv1.SessionRequest]) (*connect.Response[celstepv1.ProgramState], error),
	session string,
) *celstepv1.ProgramState {
	t.Helper()
	resp, err := fn(bg(), connectReq(&celstepv1.SessionRequest{Session: session}))
	if err != nil {
		t.Fatalf("session %s: %v", session, err)
	}
	return resp.Msg
}

// stackDisplays returns the display strings of a state's stack, top first.
func stackDisplays(state *celstepv1.ProgramState) []string {
	var out []string
	for _, slot := range state.GetStack() {
		out = append(out, slot.GetDisplay())
	}
	return out
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("code = %v, want %v (%v)", got, want, err)
	}
}
