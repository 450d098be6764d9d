package xerrors

import (
	"errors"
	"fmt"
)

const (
	ErrCodeSuccess uint32 = iota
	ErrCodeOrdinary
	ErrCodeOverflow
	ErrCodeInvalidFormat
	ErrCodeUnknownFunc
	ErrCodeArity
	ErrCodeInvalidArg
)

// Domain violation codes. Each one names the precondition that failed,
// so callers can switch on Code() without parsing messages.
const (
	ErrCodeDomain uint32 = 100 + iota
	ErrCodeDomainUnitInterval
	ErrCodeDomainAtLeastOne
	ErrCodeDomainOpenUnit
	ErrCodeDomainOutsideUnit
	ErrCodeDomainPositive
	ErrCodeDomainNonNegative
	ErrCodeDomainNonZero
	ErrCodeDomainLast
)

var (
	ErrOverFlow      = New(ErrCodeOverflow, "overflow")
	ErrInvalidFormat = New(ErrCodeInvalidFormat, "invalid fixed-point format")
	ErrUnknownFunc   = New(ErrCodeUnknownFunc, "unknown function")
	ErrArity         = New(ErrCodeArity, "wrong number of arguments")
	ErrInvalidArg    = New(ErrCodeInvalidArg, "invalid argument")

	ErrDomainUnitInterval  = New(ErrCodeDomainUnitInterval, "expected value in [-1, 1]")
	ErrDomainAtLeastOne    = New(ErrCodeDomainAtLeastOne, "expected value >= 1")
	ErrDomainOpenUnit      = New(ErrCodeDomainOpenUnit, "expected value in (-1, 1)")
	ErrDomainOutsideUnit   = New(ErrCodeDomainOutsideUnit, "expected |value| > 1")
	ErrDomainPositive      = New(ErrCodeDomainPositive, "expected positive value")
	ErrDomainNonNegative   = New(ErrCodeDomainNonNegative, "expected non-negative value")
	ErrDomainNonZero       = New(ErrCodeDomainNonZero, "expected non-zero value")
	ErrInvalidNumberString = ErrInvalidFormat.Wrap(NewOrdinary("not a decimal number"))
)

type XError interface {
	Code() uint32
	Cause() error
	Error() string
	Msg() string
	Wrap(error) XError
	Wrapf(string, ...any) XError
	Contains(XError) bool
	Equal(XError) bool
}

type xerror struct {
	code  uint32
	msg   string
	cause error
}

func New(code uint32, msg string) XError {
	return &xerror{
		code: code,
		msg:  msg,
	}
}

func NewOrdinary(msg string) XError {
	return &xerror{
		code: ErrCodeOrdinary,
		msg:  msg,
	}
}

func From(err error) XError {
	if err == nil {
		return nil
	}
	if xerr, ok := err.(XError); ok {
		return xerr
	}
	return NewOrdinary(err.Error())
}

func Wrap(err error, msg string) XError {
	return &xerror{
		code:  ErrCodeOrdinary,
		msg:   msg,
		cause: err,
	}
}

// IsDomain reports whether err is one of the domain violation errors.
func IsDomain(err error) bool {
	var xerr XError
	if !errors.As(err, &xerr) {
		return false
	}
	return xerr.Code() >= ErrCodeDomain && xerr.Code() < ErrCodeDomainLast
}

func (xerr *xerror) Code() uint32 {
	return xerr.code
}

func (xerr *xerror) Error() string {
	msg := xerr.msg

	if xerr.cause != nil {
		msg += "\n\t" + xerr.cause.Error()
	}

	return msg
}

func (xerr *xerror) Msg() string {
	return xerr.msg
}

func (xerr *xerror) Cause() error {
	return xerr.cause
}

func (xerr *xerror) Unwrap() error {
	return xerr.cause
}

func (xerr *xerror) Wrap(err error) XError {
	if xerr.cause != nil {
		if cerr, ok := xerr.cause.(*xerror); ok {
			return &xerror{
				code:  xerr.code,
				msg:   xerr.msg,
				cause: cerr.Wrap(err),
			}
		}
	}
	return &xerror{
		code:  xerr.code,
		msg:   xerr.msg,
		cause: err,
	}
}

func (xerr *xerror) Wrapf(format string, args ...any) XError {
	return xerr.Wrap(New(ErrCodeOrdinary, fmt.Sprintf(format, args...)))
}

func (xerr *xerror) Contains(other XError) bool {
	if xerr.code == other.Code() && xerr.msg == other.Msg() {
		return true
	} else if xerr.cause != nil {
		if _xerr, ok := xerr.cause.(*xerror); ok {
			return _xerr.Contains(other)
		} else {
			return errors.Is(xerr.cause, other)
		}
	}
	return false
}

func (xerr *xerror) Equal(other XError) bool {
	return xerr.code == other.Code()
}
