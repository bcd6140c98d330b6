package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failure by the branch that produced it.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindConfig is a missing or invalid credential/setting, fatal at startup.
	KindConfig
	// KindInvalidArgument is caller input rejected before any remote call.
	KindInvalidArgument
	// KindRemoteCall is a network or provider-reported failure.
	KindRemoteCall
	// KindVerification is a webhook payload whose signature did not verify.
	KindVerification
	// KindStorage is a failure of the local event journal.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindRemoteCall:
		return "remote_call"
	case KindVerification:
		return "verification"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrConfig          = &Error{Kind: KindConfig}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrRemoteCall      = &Error{Kind: KindRemoteCall}
	ErrVerification    = &Error{Kind: KindVerification}
	ErrStorage         = &Error{Kind: KindStorage}
)

// Error carries the operation context alongside the original cause.
type Error struct {
	Kind     Kind
	Op       string // e.g. "retrieve", "create", "list"
	Resource string // e.g. "product", "checkout session"
	ID       string // target identifier, when the operation has one
	Status   int    // provider HTTP status, 0 when the request never completed
	Code     string // provider error code, e.g. "resource_missing"
	Detail   string // human-readable cause
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
	}
	if e.Resource != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Resource)
	}
	if e.ID != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.ID)
	}
	if b.Len() == 0 {
		b.WriteString(e.Kind.String())
	}
	switch {
	case e.Detail != "":
		fmt.Fprintf(&b, ": %s", e.Detail)
	case e.Err != nil:
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Resource == "" && t.Err == nil && e.Kind == t.Kind
}

// Config builds a configuration error.
func Config(detail string, err error) *Error {
	return &Error{Kind: KindConfig, Op: "load", Resource: "config", Detail: detail, Err: err}
}

// Invalid builds an invalid-argument error for op/resource/id.
func Invalid(op, resource, id string, err error) *Error {
	e := &Error{Kind: KindInvalidArgument, Op: op, Resource: resource, ID: id, Err: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// Remote builds a remote-call error. The caller fills Status/Code/Detail from the
// provider error when one is available.
func Remote(op, resource, id string, err error) *Error {
	return &Error{Kind: KindRemoteCall, Op: op, Resource: resource, ID: id, Err: err}
}

// Verification builds a webhook verification error.
func Verification(err error) *Error {
	e := &Error{Kind: KindVerification, Op: "verify", Resource: "webhook signature", Err: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// Storage builds a journal error.
func Storage(op, resource, id string, err error) *Error {
	return &Error{Kind: KindStorage, Op: op, Resource: resource, ID: id, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a remote failure for an unknown identifier.
func IsNotFound(err error) bool {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindRemoteCall {
		return false
	}
	return e.Status == http.StatusNotFound || e.Code == "resource_missing"
}
