package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrRecordNotFound    = errors.New("record not found")
	ErrForbidden         = errors.New("access to the record is forbidden")

	ErrNoKeys             = errors.New("user has no key pair")
	ErrKeysAlreadyExist   = errors.New("user already has a key pair")
	ErrRecipientHasNoKeys = errors.New("recipient has no public key")

	// ErrEnvelopeUnwrapFailed means the sharing key could not be unwrapped or
	// the shared data did not decrypt under it. Usually the envelope was built
	// for a different private key or was corrupted.
	ErrEnvelopeUnwrapFailed = errors.New("sharing envelope unwrap failed")

	ErrAlreadyShared = errors.New("credential is already shared with this user")
	ErrCannotShare   = errors.New("credential cannot be shared")

	ErrEmptyRecord = errors.New("record has no fields")
)
