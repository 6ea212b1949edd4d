package ui

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Makepad-fr/crudpanel/internal/api"
	"github.com/Makepad-fr/crudpanel/internal/model"
)

// Renderer turns dispatch outcomes into status panels. Origin and StartHint
// only feed the connectivity diagnostics.
type Renderer struct {
	Endpoint  string
	Origin    string
	StartHint string
}

// Success shows operation, message and, when present, the indented data.
func (r Renderer) Success(env *model.Envelope) string {
	t := Current()
	lines := []string{
		t.Success.Render(t.SymSuccess + " SUCCESS"),
		"",
		t.Title.Render("Operation:") + " " + env.Operation,
		t.Title.Render("Message:") + " " + env.Message,
	}
	if env.Status != "" {
		lines = append(lines, t.Title.Render("Status:")+" "+env.Status)
	}
	if env.HasData() {
		lines = append(lines, t.Title.Render("Data:"), PrettyJSON(env.Data))
	}
	return Panel(lines)
}

// Error shows the raw error message, except for transport failures which get
// the connectivity checklist instead.
func (r Renderer) Error(err error) string {
	t := Current()
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	if api.IsTransport(err) {
		msg = r.Diagnostic()
	}
	return Panel([]string{
		t.Error.Render(t.SymError + " ERROR"),
		"",
		t.Title.Render("Message:") + " " + msg,
	})
}

// Diagnostic is the operator checklist for an unreachable server.
func (r Renderer) Diagnostic() string {
	return fmt.Sprintf(`Cannot connect to API server.

Please make sure:
1. FastAPI server is running (use: %s)
2. Server is running on %s
3. CORS is properly configured`, r.StartHint, r.Origin)
}

// ServerDown is the panel shown when the startup liveness check fails.
func (r Renderer) ServerDown() string {
	t := Current()
	return Panel([]string{
		t.Error.Render(t.SymError + " API Server Not Running"),
		"",
		"Please start the FastAPI server using:",
		t.Accent.Render(r.StartHint),
	})
}

// ServerUp is the panel shown while idle after a successful liveness check.
func (r Renderer) ServerUp(greeting string) string {
	t := Current()
	lines := []string{t.Success.Render(t.SymSuccess + " API server is running and accessible")}
	if greeting != "" {
		lines = append(lines, t.Muted.Render(greeting))
	}
	lines = append(lines, "", t.Muted.Render("Pick a method to send a request to "+r.Endpoint))
	return Panel(lines)
}

// Ready is the idle panel when nothing is known about the server.
func (r Renderer) Ready() string {
	return Panel([]string{Current().Muted.Render("Pick a method to send a request to " + r.Endpoint)})
}

// Loading is the in-flight panel.
func (r Renderer) Loading(m model.Method) string {
	t := Current()
	return Panel([]string{t.Pending.Render(t.SymPending) + " " + fmt.Sprintf("Sending %s request...", m)})
}

// PrettyJSON indents raw JSON two spaces; invalid input is returned as-is.
func PrettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
