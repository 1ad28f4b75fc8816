package auth

import "errors"

var (
	// ErrMissingFields rejects a submission with an empty email or password
	// before any verification round trip starts.
	ErrMissingFields = errors.New("email and password are required")

	// ErrInvalidCredentials mirrors the verifier's rejection.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrLoginInFlight rejects a second submission for the same client while
	// an earlier one is still outstanding.
	ErrLoginInFlight = errors.New("a login attempt is already in progress")

	// ErrVerifyUnavailable covers transport failures talking to the
	// credential verification service; the user should simply retry.
	ErrVerifyUnavailable = errors.New("verification service unavailable")

	// ErrWalletDisconnect reports the wallet half of a logout failing after
	// the credential session was already cleared. The credential clear is not
	// rolled back; the wallet may keep the client authenticated until a retry
	// succeeds.
	ErrWalletDisconnect = errors.New("wallet disconnect failed")
)
