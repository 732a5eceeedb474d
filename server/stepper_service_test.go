package server

import (
	"strings"
	"testing"

	"connectrpc.com/connect"

	celstepv1 "github.com/chazu/celstep/gen/celstep/v1"
	"github.com/chazu/celstep/history"
)

func TestStepperCompileAndStep(t *testing.T) {
	client := testClient(t, EvalOptions{})

	state := compile(t, client, "true ? 1 : 2")
	id := state.Session
	if id == "" {
		t.Fatal("Compile returned no session id")
	}
	if len(state.Instructions) != 7 {
		t.Fatalf("got %d instructions, want 7", len(state.Instructions))
	}
	first := state.Instructions[0]
	if first.Short != "LIT" || first.Operand != "true" {
		t.Errorf("first instruction = %v", first)
	}
	if state.Pointer != 0 || state.Done {
		t.Errorf("initial pointer/done = %d/%v", state.Pointer, state.Done)
	}

	state = sessionCall(t, client.Step, id)
	if state.Pointer != 1 {
		t.Errorf("pointer after step = %d, want 1", state.Pointer)
	}
	if got := stackDisplays(state); len(got) != 1 || got[0] != "true" {
		t.Errorf("stack after step = %v", got)
	}

	state = sessionCall(t, client.Step, id)
	if state.Pointer != 5 {
		t.Errorf("pointer after jump = %d, want 5", state.Pointer)
	}

	state = sessionCall(t, client.Run, id)
	if !state.Done {
		t.Error("not done after run")
	}
	if r := state.Result; !r.GetOk() || r.GetDisplay() != "1" || r.GetKind() != "I64" {
		t.Errorf("result = %v", r)
	}

	state = sessionCall(t, client.Reset, id)
	if state.Pointer != 0 || len(state.Stack) != 0 || state.Result != nil {
		t.Errorf("after reset = %v", state)
	}
}

func TestStepperRunError(t *testing.T) {
	client := testClient(t, EvalOptions{})
	state := compile(t, client, "{'a': 'a'}['b']")
	state = sessionCall(t, client.Run, state.Session)
	if r := state.Result; r.GetOk() || r.GetDisplay() != "NoSuchMember(b)" || r.GetKind() != "NoSuchMember" {
		t.Errorf("result = %v", r)
	}
}

func TestStepperSizeLimit(t *testing.T) {
	client := testClient(t, EvalOptions{SizeLimit: 100})
	state := compile(t, client, "[1, 2, 3]")
	state = sessionCall(t, client.Run, state.Session)
	if r := state.Result; r.GetOk() || r.GetDisplay() != "EvaluationTooLarge" {
		t.Errorf("result = %v", r)
	}
}

func TestStepperParseError(t *testing.T) {
	client := testClient(t, EvalOptions{})
	resp, err := client.Compile(bg(), connectReq(&celstepv1.CompileRequest{Source: "1 +"}))
	if err != nil {
		t.Fatal(err)
	}
	msg := resp.Msg
	if msg.Success || msg.State != nil {
		t.Fatalf("Compile(1 +) = %v", msg)
	}
	if !strings.Contains(msg.ErrorMessage, "expected expression") {
		t.Errorf("ErrorMessage = %q", msg.ErrorMessage)
	}
	if msg.Line != 1 || msg.Column != 4 {
		t.Errorf("position = %d:%d", msg.Line, msg.Column)
	}
}

func TestStepperParseErrorKeepsSession(t *testing.T) {
	client := testClient(t, EvalOptions{})
	id := compile(t, client, "40 + 2").Session

	_, err := client.Compile(bg(), connectReq(&celstepv1.CompileRequest{Session: id, Source: "(("}))
	if err != nil {
		t.Fatal(err)
	}

	if state := sessionCall(t, client.State, id); state.Source != "40 + 2" {
		t.Errorf("source after failed compile = %q", state.Source)
	}
}

func TestStepperDefaultSourceAndHistory(t *testing.T) {
	client := testClient(t, EvalOptions{DefaultSource: "2 * 21"})
	recompile := func(source string) *celstepv1.ProgramState {
		t.Helper()
		resp, err := client.Compile(bg(), connectReq(&celstepv1.CompileRequest{Session: "fixed", Source: source}))
		if err != nil {
			t.Fatal(err)
		}
		return resp.Msg.State
	}

	state := recompile("")
	if state.Source != "2 * 21" || state.Session != "fixed" {
		t.Fatalf("Compile without source = %v", state)
	}

	recompile("null")

	// Recompiling without source picks up the latest saved text.
	if state = recompile(""); state.Source != "null" {
		t.Errorf("source = %q, want null", state.Source)
	}

	hist, err := client.History(bg(), connectReq(&celstepv1.HistoryRequest{Session: "fixed", Limit: 2}))
	if err != nil {
		t.Fatal(err)
	}
	entries := hist.Msg.Entries
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}
	if entries[1].Source != "null" || entries[1].SavedAt == "" {
		t.Errorf("second entry = %v", entries[1])
	}
}

func TestStepperSnapshotRestore(t *testing.T) {
	client := testClient(t, EvalOptions{})

	id := compile(t, client, "[1, 2 + 3]").Session
	for i := 0; i < 3; i++ {
		sessionCall(t, client.Step, id)
	}

	snap, err := client.Snapshot(bg(), connectReq(&celstepv1.SessionRequest{Session: id}))
	if err != nil {
		t.Fatal(err)
	}
	if snap.Msg.Session != id || len(snap.Msg.Snapshot) == 0 {
		t.Fatalf("Snapshot = %v", snap.Msg)
	}

	resp, err := client.Restore(bg(), connectReq(&celstepv1.RestoreRequest{Snapshot: snap.Msg.Snapshot}))
	if err != nil {
		t.Fatal(err)
	}
	restored := resp.Msg
	if restored.Session == id {
		t.Error("Restore reused the original session id")
	}
	if restored.Pointer != 3 || restored.Source != "[1, 2 + 3]" {
		t.Errorf("restored = %v", restored)
	}
	if got := stackDisplays(restored); len(got) != 3 || got[0] != "3" || got[2] != "1" {
		t.Errorf("restored stack = %v", got)
	}

	state := sessionCall(t, client.Run, restored.Session)
	if display := state.Result.GetDisplay(); display != "[1, 5]" {
		t.Errorf("result after restore = %v", display)
	}
}

func TestStepperErrors(t *testing.T) {
	client := testClient(t, EvalOptions{})

	_, err := client.Step(bg(), connectReq(&celstepv1.SessionRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = client.Step(bg(), connectReq(&celstepv1.SessionRequest{Session: "missing"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = client.Restore(bg(), connectReq(&celstepv1.RestoreRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = client.Restore(bg(), connectReq(&celstepv1.RestoreRequest{Snapshot: []byte("AAAA")}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = client.History(bg(), connectReq(&celstepv1.HistoryRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestStepperJSONProtocol(t *testing.T) {
	client := testClient(t, EvalOptions{}, connect.WithProtoJSON())
	state := compile(t, client, "1 + 2")
	state = sessionCall(t, client.Run, state.Session)
	if display := state.Result.GetDisplay(); display != "3" {
		t.Errorf("result = %v", display)
	}
}

func TestStepperServiceDirect(t *testing.T) {
	svc := NewStepperService(NewSessionStore(), history.NewMemoryStore(), EvalOptions{})

	_, err := svc.State(bg(), connectReq(&celstepv1.SessionRequest{Session: "nope"}))
	assertCode(t, err, connect.CodeNotFound)

	resp, err := svc.Compile(bg(), connectReq(&celstepv1.CompileRequest{}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Msg.State.Source != "1 + 1" {
		t.Errorf("default source = %q", resp.Msg.State.Source)
	}
	state, err := svc.Run(bg(), connectReq(&celstepv1.SessionRequest{Session: resp.Msg.Session}))
	if err != nil {
		t.Fatal(err)
	}
	if state.Msg.Result.GetDisplay() != "2" {
		t.Errorf("result = %v", state.Msg.Result)
	}
}
