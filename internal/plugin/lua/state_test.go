package lua

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"
)

func TestStateDoString(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(context.Background(), "x = 1 + 2"); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}
	if got := s.GetGlobal("x"); got != lua.LNumber(3) {
		t.Errorf("expected 3, got %v", got)
	}
}

func TestStateSyntaxError(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(context.Background(), "x = "); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestStateTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString(context.Background(), "while true do end")
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Fatalf("expected ErrExecutionTimeout, got %v", err)
	}

	if err := s.DoString(context.Background(), "y = 1"); err != nil {
		t.Errorf("state should be usable after a timeout: %v", err)
	}
}

func TestStateCanceledContext(t *testing.T) {
	s := NewState(WithExecutionTimeout(0))
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.DoString(ctx, "while true do end")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrExecutionTimeout) {
		t.Error("cancellation is not a timeout")
	}
}

func TestStateClosed(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if err := s.DoString(context.Background(), "x = 1"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("expected ErrStateClosed, got %v", err)
	}
	if got := s.GetGlobal("x"); got != lua.LNil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestSandboxRemovesUnsafeGlobals(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile", "load", "loadstring", "require"} {
		if got := s.GetGlobal(name); got != lua.LNil {
			t.Errorf("%s should not be available, got %s", name, got.Type())
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs", "tostring"} {
		if got := s.GetGlobal(name); got == lua.LNil {
			t.Errorf("%s should be available", name)
		}
	}
}

func TestSandboxPrint(t *testing.T) {
	var out bytes.Buffer
	s := NewState(WithOutput(&out))
	defer s.Close()

	if err := s.DoString(context.Background(), `print("a", 1, true) print(nil)`); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}
	if got := out.String(); got != "a\t1\ttrue\nnil\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestRegisterModule(t *testing.T) {
	s := NewState()
	defer s.Close()

	s.RegisterModule("greet", map[string]lua.LGFunction{
		"hello": func(L *lua.LState) int {
			L.Push(lua.LString("hello " + L.CheckString(1)))
			return 1
		},
	})

	if err := s.DoString(context.Background(), `msg = greet.hello("md")`); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}
	if got := s.GetGlobal("msg").String(); !strings.HasPrefix(got, "hello md") {
		t.Errorf("unexpected result %q", got)
	}
}
