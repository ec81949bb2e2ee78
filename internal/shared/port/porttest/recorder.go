// Package porttest provides an in-memory port.APIClient that records every call.
package porttest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"restoBotClient/internal/shared/port"
)

// Call is one recorded request. Body holds the JSON form of the payload so tests can compare
// exactly what would have gone over the wire.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
}

// Recorder answers every call with Response (JSON round-tripped into out) or Err.
type Recorder struct {
	mu       sync.Mutex
	calls    []Call
	Response any
	Err      error
}

func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the most recent call, or the zero Call when none was made.
func (r *Recorder) Last() Call {
	calls := r.Calls()
	if len(calls) == 0 {
		return Call{}
	}
	return calls[len(calls)-1]
}

func (r *Recorder) Get(_ context.Context, path string, query url.Values, out any) error {
	return r.record(http.MethodGet, path, query, nil, out)
}

func (r *Recorder) Post(_ context.Context, path string, body, out any) error {
	return r.record(http.MethodPost, path, nil, body, out)
}

func (r *Recorder) Put(_ context.Context, path string, body, out any) error {
	return r.record(http.MethodPut, path, nil, body, out)
}

func (r *Recorder) Patch(_ context.Context, path string, body, out any) error {
	return r.record(http.MethodPatch, path, nil, body, out)
}

func (r *Recorder) Delete(_ context.Context, path string) error {
	return r.record(http.MethodDelete, path, nil, nil, nil)
}

func (r *Recorder) record(method, path string, query url.Values, body, out any) error {
	call := Call{Method: method, Path: path, Query: query}
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		call.Body = string(raw)
	}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	response, failure := r.Response, r.Err
	r.mu.Unlock()

	if failure != nil {
		return failure
	}
	if out == nil || response == nil {
		return nil
	}
	raw, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

var _ port.APIClient = (*Recorder)(nil)
