package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/crudpanel/internal/api"
	"github.com/Makepad-fr/crudpanel/internal/model"
)

func testRenderer() Renderer {
	SetColorForcing(false, true)
	SetTheme("classic")
	return Renderer{Origin: "http://127.0.0.1:8000", StartHint: "uvicorn main:app --reload"}
}

func TestSuccessPanel(t *testing.T) {
	r := testRenderer()
	out := r.Success(&model.Envelope{
		Operation: "CREATE",
		Message:   "ok",
		Data:      json.RawMessage(`{"id":1}`),
	})
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "CREATE")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "Data:")
	assert.Contains(t, out, `"id": 1`)
}

func TestSuccessPanelWithoutData(t *testing.T) {
	r := testRenderer()
	out := r.Success(&model.Envelope{Operation: "DELETE", Message: "gone", Data: json.RawMessage("null")})
	assert.Contains(t, out, "DELETE")
	assert.NotContains(t, out, "Data:")
}

func TestErrorPanelHTTPStatus(t *testing.T) {
	r := testRenderer()
	out := r.Error(&api.HTTPError{StatusCode: 500})
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "500")
	assert.NotContains(t, out, "Cannot connect")
}

func TestErrorPanelFetchFailure(t *testing.T) {
	r := testRenderer()
	out := r.Error(errors.New("Failed to fetch"))
	assert.Contains(t, out, "Cannot connect to API server.")
	assert.Contains(t, out, "uvicorn main:app --reload")
	assert.Contains(t, out, "http://127.0.0.1:8000")
	assert.Contains(t, out, "CORS is properly configured")
}

func TestErrorPanelTypedTransport(t *testing.T) {
	r := testRenderer()
	err := fmt.Errorf("dispatch: %w", &api.TransportError{
		Method: "GET", URL: "http://127.0.0.1:8000/crud",
		Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")},
	})
	out := r.Error(err)
	assert.Contains(t, out, "Please make sure:")
	assert.NotContains(t, out, "connection refused")
}

func TestErrorPanelDecodeFailureIsGeneric(t *testing.T) {
	r := testRenderer()
	out := r.Error(&api.DecodeError{Err: errors.New("invalid character '<'")})
	assert.Contains(t, out, "invalid JSON response")
	assert.NotContains(t, out, "Cannot connect")
}

func TestServerDownPanel(t *testing.T) {
	r := testRenderer()
	out := r.ServerDown()
	assert.Contains(t, out, "API Server Not Running")
	assert.Contains(t, out, "uvicorn main:app --reload")
}

func TestLoadingPanel(t *testing.T) {
	r := testRenderer()
	assert.Contains(t, r.Loading(model.PATCH), "Sending PATCH request...")
}

func TestPrettyJSONInvalidPassthrough(t *testing.T) {
	assert.Equal(t, "{nope", PrettyJSON([]byte("{nope")))
	assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", PrettyJSON([]byte(`{"a":[1]}`)))
}

func TestButtons(t *testing.T) {
	testRenderer()
	out := Buttons([]string{"GET", "POST"}, 1, false)
	assert.Contains(t, out, "GET")
	assert.Contains(t, out, "POST")
}

func TestSetThemeMono(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	assert.Equal(t, "mono", Current().Name)
	assert.Contains(t, Panel([]string{"hi"}), "+")
}

func TestOKAndFailWriteToGivenWriter(t *testing.T) {
	testRenderer()
	var out, errOut bytes.Buffer
	OK(&out, "reachable")
	Fail(&errOut, "usage: crudpanel get")
	assert.Contains(t, out.String(), "✔ reachable")
	assert.Contains(t, errOut.String(), "✖ usage: crudpanel get")
}

func TestReadyPanel(t *testing.T) {
	r := testRenderer()
	r.Endpoint = "http://127.0.0.1:8000/crud"
	out := r.Ready()
	assert.Contains(t, out, "http://127.0.0.1:8000/crud")
	assert.NotContains(t, out, "Not Running")
}
