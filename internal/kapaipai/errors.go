package kapaipai

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two upstream failure classes. Use errors.Is.
var (
	ErrUpstream         = errors.New("marketplace unavailable")
	ErrUpstreamProtocol = errors.New("marketplace protocol error")
)

// UpstreamError reports a transport failure, a timeout or a non-2xx status.
type UpstreamError struct {
	Op         string
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s: timed out: %v", e.Op, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}

// ProtocolError reports a response whose envelope code signals failure.
type ProtocolError struct {
	Op      string
	Code    int
	Message string
}

func (e *ProtocolError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unknown"
	}
	return fmt.Sprintf("%s: API error code %d: %s", e.Op, e.Code, msg)
}

func (e *ProtocolError) Unwrap() error {
	return ErrUpstreamProtocol
}
