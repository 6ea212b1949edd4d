package model

import (
	"fmt"
	"strings"
)

// Method is one of the five verbs the CRUD endpoint accepts.
type Method string

const (
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	PATCH  Method = "PATCH"
	DELETE Method = "DELETE"
)

// Methods lists the verbs in button order.
var Methods = []Method{GET, POST, PUT, PATCH, DELETE}

// ParseMethod accepts any casing ("post", "Post", "POST").
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown method: %q", s)
}

// HasBody reports whether requests with this method carry the sample payload.
func (m Method) HasBody() bool {
	return m == POST || m == PUT || m == PATCH
}

func (m Method) String() string { return string(m) }

// Payload is the fixed-shape body sent for mutating methods.
type Payload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func SamplePayload(m Method) Payload {
	return Payload{
		Name:        fmt.Sprintf("Sample %s data", m),
		Description: fmt.Sprintf("This is a test %s request", m),
	}
}

// Request describes one user action. Built fresh per dispatch.
type Request struct {
	Method Method
	Body   *Payload // nil for GET and DELETE
}

func NewRequest(m Method) Request {
	r := Request{Method: m}
	if m.HasBody() {
		p := SamplePayload(m)
		r.Body = &p
	}
	return r
}
