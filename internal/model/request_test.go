package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for _, in := range []string{"get", "Post", " PUT ", "patch", "DELETE"} {
		_, err := ParseMethod(in)
		assert.NoError(t, err, in)
	}
	m, err := ParseMethod("post")
	require.NoError(t, err)
	assert.Equal(t, POST, m)

	_, err = ParseMethod("HEAD")
	assert.Error(t, err)
}

func TestNewRequestBodyOnlyForMutations(t *testing.T) {
	for _, m := range []Method{POST, PUT, PATCH} {
		r := NewRequest(m)
		require.NotNil(t, r.Body, m)
		assert.Equal(t, "Sample "+string(m)+" data", r.Body.Name)
		assert.Equal(t, "This is a test "+string(m)+" request", r.Body.Description)
	}
	for _, m := range []Method{GET, DELETE} {
		assert.Nil(t, NewRequest(m).Body, m)
	}
}

func TestEnvelopeHasData(t *testing.T) {
	cases := []struct {
		body string
		want bool
	}{
		{`{"operation":"GET","message":"ok"}`, false},
		{`{"operation":"POST","message":"ok","data":null}`, false},
		{`{"operation":"POST","message":"ok","data":{"a":1}}`, true},
		{`{"operation":"POST","message":"ok","data":0}`, true},
		{`{"operation":"PUT","message":"ok","data":false}`, true},
		{`{"operation":"PATCH","message":"ok","data":""}`, true},
	}
	for _, tc := range cases {
		var env Envelope
		require.NoError(t, json.Unmarshal([]byte(tc.body), &env))
		assert.Equal(t, tc.want, env.HasData(), tc.body)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "in-flight", InFlight.String())
}
