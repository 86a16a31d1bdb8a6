package zerr

import (
	"fmt"
	"runtime"
	"strings"
)

// Error is the sticky error value every handle in this module carries. It
// pairs a CodeError with an optional parent (the underlying cause) and the
// call site that raised it.
type Error interface {
	error

	Code() CodeError
	IsCode(code CodeError) bool
	HasParent() bool
	GetParent() Error
	AddParent(err error) Error
}

type zerror struct {
	code   CodeError
	msg    string
	parent error
	caller string
}

// New creates an Error for the given code with no parent cause.
func New(code CodeError) Error {
	return newError(code, nil)
}

// ErrorParent creates an Error for the given code, wrapping the supplied
// cause. A nil cause behaves like New.
func ErrorParent(code CodeError, parent error) Error {
	return newError(code, parent)
}

// Iferror returns nil if err is nil, otherwise an Error for the given code
// wrapping err as parent. Useful to collapse a stdlib call directly into the
// module's sticky-error model: `return zerr.Iferror(zerr.OpeningError, err)`.
func Iferror(code CodeError, err error) Error {
	if err == nil {
		return nil
	}
	return newError(code, err)
}

func newError(code CodeError, parent error) Error {
	_, file, line, _ := runtime.Caller(2)
	return &zerror{
		code:   code,
		msg:    getMessage(code),
		parent: parent,
		caller: fmt.Sprintf("%s:%d", file, line),
	}
}

func (e *zerror) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(e.msg)

	if e.parent != nil {
		b.WriteString(": ")
		b.WriteString(e.parent.Error())
	}

	return b.String()
}

func (e *zerror) Code() CodeError {
	if e == nil {
		return UnknownError
	}
	return e.code
}

func (e *zerror) IsCode(code CodeError) bool {
	return e != nil && e.code == code
}

func (e *zerror) HasParent() bool {
	return e != nil && e.parent != nil
}

func (e *zerror) GetParent() Error {
	if e == nil || e.parent == nil {
		return nil
	}

	if p, ok := e.parent.(Error); ok {
		return p
	}

	return &zerror{code: UnknownError, msg: e.parent.Error()}
}

func (e *zerror) AddParent(err error) Error {
	if e == nil || err == nil {
		return e
	}
	e.parent = err
	return e
}

// CallerOf returns the file:line of the point where err was raised, when err
// originates from this package. Mostly useful in tests and debug logging.
func CallerOf(err error) string {
	if z, ok := err.(*zerror); ok {
		return z.caller
	}
	return ""
}

// Error builds an Error for this code, optionally wrapping parent. Matches
// the call-site shape used throughout the archive packages: `zerr.BadEntry.Error(nil)`.
func (c CodeError) Error(parent error) Error {
	return newError(c, parent)
}

// ErrorParent is an alias of Error kept for call sites that read more
// naturally with an explicit parent cause.
func (c CodeError) ErrorParent(parent error) Error {
	return newError(c, parent)
}

// Iferror returns nil if err is nil, otherwise an Error of this code wrapping err.
func (c CodeError) Iferror(err error) Error {
	if err == nil {
		return nil
	}
	return newError(c, err)
}
