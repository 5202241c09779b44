package exam

import "errors"

var (
	// ErrSessionInactive is returned when an answer is recorded on a session
	// that is not active (unstarted or already finished).
	ErrSessionInactive = errors.New("exam: session is not active")

	// ErrIndexOutOfRange is returned for a question index outside the
	// current question sequence.
	ErrIndexOutOfRange = errors.New("exam: question index out of range")
)
