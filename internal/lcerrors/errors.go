package lcerrors

import (
	"errors"
	"fmt"
)

var (
	ErrConfig  = errors.New("config error")
	ErrTheme   = errors.New("theme error")
	ErrFetch   = errors.New("fetch error")
	ErrParse   = errors.New("parse error")
	ErrJudge   = errors.New("judge error")
	ErrProblem = errors.New("problem error")
)

var (
	ErrMissingConfigKey = fmt.Errorf("%w: missing required config key", ErrConfig)
	ErrInvalidOption    = fmt.Errorf("%w: invalid option", ErrConfig)

	ErrMissingTheme = fmt.Errorf("%w: theme not found", ErrTheme)

	ErrMissingField = fmt.Errorf("%w: missing field", ErrParse)
	ErrFieldType    = fmt.Errorf("%w: unexpected field type", ErrParse)
	ErrDecode       = fmt.Errorf("%w: cannot decode payload", ErrParse)

	ErrNoJudgeID = fmt.Errorf("%w: judge returned no id", ErrJudge)

	ErrUnknownSlug   = fmt.Errorf("%w: unknown problem", ErrProblem)
	ErrMalformedPath = fmt.Errorf("%w: malformed solution file name", ErrProblem)
	ErrFileExists    = fmt.Errorf("%w: file already exists", ErrProblem)
)

type FetchKind int

const (
	FetchNetwork FetchKind = iota
	FetchHTTP
	FetchDecode
	FetchAPI
)

func (k FetchKind) String() string {
	switch k {
	case FetchNetwork:
		return "network"
	case FetchHTTP:
		return "http"
	case FetchDecode:
		return "decode"
	case FetchAPI:
		return "api"
	default:
		return "unknown"
	}
}

// FetchError is returned by the transport for every failed call.
type FetchError struct {
	Kind    FetchKind
	URL     string
	Status  int
	Details string
	Err     error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchHTTP:
		msg := fmt.Sprintf("request to %s failed with HTTP %d", e.URL, e.Status)
		if e.Status == 401 || e.Status == 403 {
			msg += " - your session cookie is invalid or expired, refresh it with 'leetcode config cookie <value>'"
		}
		return msg
	case FetchAPI:
		return fmt.Sprintf("api error from %s, %s", e.URL, e.Details)
	case FetchDecode:
		return fmt.Sprintf("cannot decode response from %s, %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("cannot reach %s, %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// Unauthorized reports whether err is an HTTP 401/403 from the platform.
func Unauthorized(err error) bool {
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		return false
	}
	return fetchErr.Kind == FetchHTTP && (fetchErr.Status == 401 || fetchErr.Status == 403)
}
