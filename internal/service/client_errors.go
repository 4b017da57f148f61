package service

import "errors"

// Client-side sentinel errors.
var (
	// ErrNoIdentity is returned by the mutation layer when no user is signed
	// in. Mutations never fall back to a local write in remote mode.
	ErrNoIdentity = errors.New("no signed-in user")

	// ErrConfirmationRequired is returned by DeleteRecord when the caller has
	// not confirmed the deletion.
	ErrConfirmationRequired = errors.New("deletion requires confirmation")

	// ErrNoStoredSession is returned by RestoreSession when the local session
	// slot is empty.
	ErrNoStoredSession = errors.New("no stored session")

	// ErrSearchFailed is returned when any search variant fails; partial
	// results are never surfaced.
	ErrSearchFailed = errors.New("search failed")

	// ErrRemoteDisabled is returned by remote-only operations when the client
	// runs in local-only fallback mode.
	ErrRemoteDisabled = errors.New("remote service is not configured")

	// ErrNothingToAnalyze is returned by the insights service when there are
	// no health log entries to submit.
	ErrNothingToAnalyze = errors.New("no health logs to analyze")
)
