package conferr

import (
	"errors"
	"fmt"
)

// Kind identifies the high level class of an error surfaced by bitcoinconf.
type Kind string

const (
	// KindValidation indicates user supplied configuration data failed validation.
	KindValidation Kind = "validation"
	// KindParse indicates bitcoin.conf text could not be parsed.
	KindParse Kind = "parse"
	// KindRender indicates a configuration could not be serialized.
	KindRender Kind = "render"
	// KindConflict 表示网络选项互相冲突。
	KindConflict Kind = "conflict"
	// KindIO 表示读写配置文件失败。
	KindIO Kind = "io"
	// KindInternal 表示未知或内部错误。
	KindInternal Kind = "internal"
)

// Error wraps an underlying error and attaches a Kind so callers can branch on it.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

// Unwrap lets errors.Is/As reach the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates an error of the given Kind.
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

// Newf formats a message around a sentinel so the result still matches it with errors.Is.
func Newf(kind Kind, sentinel error, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}

// KindOf returns the Kind of the outermost *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrUnknownOption        = errors.New("unknown option name")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrInvalidSection       = errors.New("expected section name to be one of main,regtest,test")
	ErrNotAllowedInSection  = errors.New("option not allowed in section")
	ErrDotNotationOnlyInTop = errors.New("dot notation is only allowed in top section")
	ErrEmptyOptionName      = errors.New("empty option name")
	ErrMissingEquals        = errors.New(`expected "name = value"`)
	ErrRPCPasswordComment   = errors.New("rpcpassword option line cannot contain comments")
	ErrConflictingNetworks  = errors.New("regtest and testnet cannot both be set to true")
	ErrNestedInclude        = errors.New("included conf files are not allowed to have includeconf")
	// ErrNoReader 表示存在 includeconf 但未提供文件读取器。
	ErrNoReader = errors.New("includeconf requires a file reader")
)

// ParseError records the 1-based line number and the original text of the line that failed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v: line %d: %s", e.Err, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
