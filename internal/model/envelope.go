package model

import (
	"bytes"
	"encoding/json"
)

// Envelope is the wrapper the CRUD server returns for every operation.
// Data may be absent (GET, DELETE) or null (mutations without a body).
type Envelope struct {
	Operation string          `json:"operation"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Status    string          `json:"status,omitempty"`
}

// HasData is false for a missing field and for an explicit JSON null.
func (e Envelope) HasData() bool {
	d := bytes.TrimSpace(e.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// Greeting is what the server root answers to the liveness check.
type Greeting struct {
	Message string `json:"message"`
}

// State is the busy flag of the dispatcher.
type State int

const (
	Idle State = iota
	InFlight
)

func (s State) String() string {
	if s == InFlight {
		return "in-flight"
	}
	return "idle"
}
