package infra

import (
	"errors"
	"log/slog"

	"restaurant-deals/internal/pkg/errs"
)

type SourceErrorKind string

// SourceError is returned by every snapshot source. The usecase layer only
// sees it through errs.ErrUpstreamUnavailable and errs.ErrUpstreamPayload.
type SourceError struct {
	Kind SourceErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e SourceError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e SourceError) Unwrap() error {
	return e.err
}

func (e SourceError) Is(target error) bool {
	switch target {
	case errs.ErrUpstreamUnavailable:
		return e.Kind == KindUpstreamFailure
	case errs.ErrUpstreamPayload:
		return e.Kind == KindDecodeFailure || e.Kind == KindInvalidData
	}
	return false
}

func WrapSourceErr(slogger *slog.Logger, kind SourceErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.Any("error", err))
	}

	slogger.Error("Snapshot source error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return SourceError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind SourceErrorKind) bool {
	var e SourceError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindUpstreamFailure SourceErrorKind = "UPSTREAM_FAILURE"
	KindDecodeFailure   SourceErrorKind = "DECODE_FAILURE"
	KindInvalidData     SourceErrorKind = "INVALID_DATA"
)
