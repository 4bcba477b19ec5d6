package infra

import (
	"log/slog"

	"gongsil-api/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError classifies a failed call to Naver or the backend origin.
type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int
	msg    string
	err    error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Upstream error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound           UpstreamErrorKind = "NOT_FOUND"
	KindUnavailable        UpstreamErrorKind = "UNAVAILABLE"
	KindRejected           UpstreamErrorKind = "REJECTED"
	KindMissingCredentials UpstreamErrorKind = "MISSING_CREDENTIALS"
	KindDecode             UpstreamErrorKind = "DECODE"
)

// MarkUpstream maps an upstream failure onto the shared sentinels in errs.
func MarkUpstream(err error) error {
	switch {
	case err == nil:
		return nil
	case IsKind(err, KindNotFound):
		return errs.Mark(err, errs.ErrSpaceNotFound)
	case IsKind(err, KindRejected):
		return errs.Mark(err, errs.ErrUpstreamRejected)
	case IsKind(err, KindMissingCredentials):
		return errs.Mark(err, errs.ErrMissingCredentials)
	default:
		return errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
}
