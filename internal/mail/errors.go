package mail

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrNotConfigured marks a send that could not even be attempted because
// receiver address or transport credentials are missing. It is fatal to the
// request, never to the process.
var ErrNotConfigured = errors.New("mailer is not configured")

// Kind is the transport failure taxonomy surfaced to callers so they can
// produce a targeted diagnostic. Recovery is the caller's decision.
type Kind int

const (
	KindGeneric Kind = iota
	KindConfiguration
	KindAuthentication
	KindConnection
)

var authMarkers = []string{
	"535",
	"534",
	"username and password not accepted",
	"authentication failed",
	"invalid credentials",
	"auth unsuccessful",
}

// ClassifyError maps a send failure onto the taxonomy: configuration,
// authentication, connection/timeout, or generic transport failure.
func ClassifyError(err error) Kind {
	if err == nil {
		return KindGeneric
	}
	if errors.Is(err, ErrNotConfigured) {
		return KindConfiguration
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range authMarkers {
		if strings.Contains(msg, marker) {
			return KindAuthentication
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindConnection
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "i/o timeout") {
		return KindConnection
	}

	return KindGeneric
}

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindAuthentication:
		return "authentication"
	case KindConnection:
		return "connection"
	default:
		return "transport"
	}
}
