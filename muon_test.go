package muon

import "testing"

// testContext returns a context with simple deterministic measurement
// callbacks: 6 px per byte, 10 px line height.
func testContext() *Context {
	ctx := New(Config{})
	ctx.TextWidth = func(_ Font, s string) int { return 6 * len(s) }
	ctx.TextHeight = func(_ Font) int { return 10 }
	return ctx
}

// commandTypes drains the command stream and returns the visible types.
func commandTypes(ctx *Context) []CommandType {
	var types []CommandType
	var cmd Command
	for ctx.NextCommand(&cmd) {
		types = append(types, cmd.Type)
	}
	return types
}

// textCommands drains the command stream and returns every text payload in
// iteration order.
func textCommands(ctx *Context) []string {
	var texts []string
	var cmd Command
	for ctx.NextCommand(&cmd) {
		if cmd.Type == CommandText {
			texts = append(texts, string(cmd.Text.Str))
		}
	}
	return texts
}

func TestVersion(t *testing.T) {
	if Version != "2.02" {
		t.Fatalf("version = %q", Version)
	}
}
