package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies every failure the client can surface. A parsed
// response carrying a non-zero ResponseCode is not an error of any kind;
// callers inspect that on the response itself.
type ErrorKind string

const (
	ErrTransport       ErrorKind = "transport"
	ErrHttpStatus      ErrorKind = "http_status"
	ErrDeserialization ErrorKind = "deserialization"
	ErrAuth            ErrorKind = "auth"
	ErrCrypto          ErrorKind = "crypto"
)

type Error struct {
	Kind   ErrorKind
	Op     string
	Status int
	cause  error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("mpesa: %s: %s error (status %d): %v", e.Op, e.Kind, e.Status, e.cause)
	}
	return fmt.Sprintf("mpesa: %s: %s error: %v", e.Op, e.Kind, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the classification of err, or the empty kind when err
// did not originate from this client.
func KindOf(err error) (out ErrorKind) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return
}

func transportError(op string, err error) *Error {
	return &Error{Kind: ErrTransport, Op: op, cause: err}
}

func httpStatusError(op string, status int, body []byte) *Error {
	return &Error{Kind: ErrHttpStatus, Op: op, Status: status,
		cause: errors.Errorf("remote replied %d: %s", status, string(body))}
}

func deserializationError(op string, err error) *Error {
	return &Error{Kind: ErrDeserialization, Op: op, cause: errors.Wrap(err, "failed to parse response body")}
}

func authError(op string, err error) *Error {
	return &Error{Kind: ErrAuth, Op: op, cause: err}
}

func cryptoError(op string, err error) *Error {
	return &Error{Kind: ErrCrypto, Op: op, cause: err}
}
