package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Kind classifies a failed call.
type Kind int

const (
	// KindOther covers local failures: bad input, unreadable files, a
	// cancelled context or an undecodable response.
	KindOther Kind = iota
	// KindNetwork means no response arrived.
	KindNetwork
	// KindServer means the backend answered with a non-2xx status.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	default:
		return "other"
	}
}

const (
	NetworkErrorMessage  = "Network error - please check your connection"
	DefaultServerMessage = "An error occurred"
)

var ErrNotConfigured = errors.New("backend URL is not configured")

// Error is the normalized form of every failure returned by Client.
type Error struct {
	Kind   Kind
	Status int    // KindServer only
	Detail string // KindServer only: body "detail" or DefaultServerMessage
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return NetworkErrorMessage
	case KindServer:
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return DefaultServerMessage
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the user-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}

// IsKind reports whether err is a client Error of kind k.
func IsKind(err error, k Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == k
}

func otherError(err error) error {
	return &Error{Kind: KindOther, Err: err}
}

// transportError classifies a failed round trip. A context the caller
// cancelled is not a network problem.
func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &Error{Kind: KindOther, Err: ctxErr}
	}
	return &Error{Kind: KindNetwork, Err: err}
}

const maxErrorBody = 1 << 20

func serverError(resp *http.Response) error {
	e := &Error{Kind: KindServer, Status: resp.StatusCode, Detail: DefaultServerMessage}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal(raw, &body) == nil {
		// FastAPI-style validation errors carry a list; only a string is shown
		if s, ok := body.Detail.(string); ok && s != "" {
			e.Detail = s
		}
	}
	e.Err = errors.New(resp.Status)
	return e
}
