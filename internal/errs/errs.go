// Package errs defines the fatal error taxonomy used by the layers around the
// puzzle engine: mode construction, asset and level loading, and the
// leaderboard. The engine itself (package picross) never returns these.
// KindOutOfBounds, KindWindowCreation and KindAudioInit are not raised here;
// they are reserved for front-ends that own a window or an audio device.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	KindFileLoad        Kind = "FILE_LOAD"
	KindAssetLoad       Kind = "ASSET_LOAD"
	KindInvalidGrid     Kind = "INVALID_GRID"
	KindInvalidGameMode Kind = "INVALID_GAME_MODE"
	KindOutOfBounds     Kind = "OUT_OF_BOUNDS"
	KindWindowCreation  Kind = "WINDOW_CREATION"
	KindLevelLoad       Kind = "LEVEL_LOAD"
	KindAudioInit       Kind = "AUDIO_INIT"
	KindLeaderboard     Kind = "LEADERBOARD"
)

// Sentinels for errors.Is checks. Any *Error of the same Kind matches.
var (
	ErrFileLoad        = &Error{Kind: KindFileLoad}
	ErrAssetLoad       = &Error{Kind: KindAssetLoad}
	ErrInvalidGrid     = &Error{Kind: KindInvalidGrid}
	ErrInvalidGameMode = &Error{Kind: KindInvalidGameMode}
	ErrOutOfBounds     = &Error{Kind: KindOutOfBounds}
	ErrWindowCreation  = &Error{Kind: KindWindowCreation}
	ErrLevelLoad       = &Error{Kind: KindLevelLoad}
	ErrAudioInit       = &Error{Kind: KindAudioInit}
	ErrLeaderboard     = &Error{Kind: KindLeaderboard}
)

// Error carries a Kind, a message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates an error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg = fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
