package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestServeStdio_ProcessesRequestsLineByLine(t *testing.T) {
	s := NewServer(testProvider())

	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		``,
		`{this is not json`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n") + "\n"

	var out strings.Builder
	if err := s.ServeStdio(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 responses (blank line skipped), got %d:\n%s", len(lines), out.String())
	}

	var first struct {
		ID     any `json:"id"`
		Result any `json:"result"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first.ID != float64(1) || first.Result == nil {
		t.Errorf("expected initialize result for id 1, got %s", lines[0])
	}

	// The malformed line yields an error response with a null id and the
	// loop keeps going.
	var second struct {
		ID    any    `json:"id"`
		Error *Error `json:"error"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if second.ID != nil {
		t.Errorf("expected null id for unparseable request, got %v", second.ID)
	}
	if second.Error == nil || second.Error.Code != CodeInternalError {
		t.Errorf("expected internal error for unparseable request, got %s", lines[1])
	}

	var third struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &third); err != nil {
		t.Fatal(err)
	}
	if third.ID != float64(2) {
		t.Errorf("expected id 2 on the final response, got %v", third.ID)
	}
}

func TestServeStdio_ContextCancellation(t *testing.T) {
	s := NewServer(testProvider())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := `{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n"
	var out strings.Builder
	err := s.ServeStdio(ctx, strings.NewReader(input), &out)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
