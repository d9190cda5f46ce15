// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message catalogue of the
// go-pass-owl client.
//
// All Msg* constants are human-readable strings printed by the CLI or
// written to log entries to describe the outcome of an operation.
// MessageFor maps the errors of the core packages onto them so that every
// command reports the same condition with the same wording.
package app

import (
	"errors"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/service"
	"github.com/MKhiriev/go-pass-owl/internal/session"
)

const (
	// MsgInvalidDataProvided is shown when required input is missing or
	// malformed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is shown when the username/master password
	// pair is rejected.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is shown when a registration attempt is
	// rejected because the requested username is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgUserNotFound is shown when no account matches the username or id.
	MsgUserNotFound = "user not found"

	// MsgNotLoggedIn is shown when a command needs a session and none is
	// stored.
	MsgNotLoggedIn = "not logged in, run login first"

	// MsgSessionExpired is shown when the server no longer accepts the
	// stored bearer credential.
	MsgSessionExpired = "session expired, please log in again"

	// MsgKeyUnavailable is shown when the encryption key is not held, e.g.
	// after the idle timeout. Re-entering the master password fixes it.
	MsgKeyUnavailable = "vault is locked, re-enter the master password"

	// MsgSessionCleared is shown when a logout landed while the master
	// password was being verified.
	MsgSessionCleared = "session ended while unlocking, log in again"

	// MsgPrivateKeyUnavailable is shown when a received share cannot be
	// opened because no private key is held.
	MsgPrivateKeyUnavailable = "private key is not available, generate keys or re-enter the master password"

	// MsgDecryptionFailed is shown when stored ciphertext does not verify
	// under the session key.
	MsgDecryptionFailed = "data could not be decrypted"

	// MsgDerivationFailed is shown when a key cannot be derived.
	MsgDerivationFailed = "key derivation failed"

	// MsgEnvelopeUnwrapFailed is shown when a shared credential was not
	// sealed for the current user's key pair or is corrupted.
	MsgEnvelopeUnwrapFailed = "shared credential could not be opened"

	// MsgNoKeys is shown when sharing needs a key pair the user lacks.
	MsgNoKeys = "no key pair, run keys init first"

	// MsgKeysAlreadyExist is shown when keys init would overwrite a pair.
	MsgKeysAlreadyExist = "key pair already exists"

	// MsgRecipientHasNoKeys is shown when the recipient never generated a
	// key pair.
	MsgRecipientHasNoKeys = "recipient has no public key yet"

	// MsgAlreadyShared is shown when the credential is already shared with
	// the recipient.
	MsgAlreadyShared = "credential is already shared with this user"

	// MsgCannotShare is shown when the server refuses a share.
	MsgCannotShare = "credential cannot be shared"

	// MsgAccessDenied is shown when the record belongs to another user.
	MsgAccessDenied = "access denied"

	// MsgDataNotFound is shown when a record does not exist.
	MsgDataNotFound = "data not found"

	// MsgServerUnavailable is shown for server-side failures.
	MsgServerUnavailable = "server error, try again later"

	// MsgInternalError is the fallback for anything unmapped.
	MsgInternalError = "internal error"
)

var messages = []struct {
	err error
	msg string
}{
	{service.ErrInvalidDataProvided, MsgInvalidDataProvided},
	{service.ErrWrongPassword, MsgInvalidLoginPassword},
	{service.ErrUserAlreadyExists, MsgLoginAlreadyExists},
	{service.ErrUserNotFound, MsgUserNotFound},
	{service.ErrNotLoggedIn, MsgNotLoggedIn},
	{service.ErrSessionExpired, MsgSessionExpired},
	{service.ErrEnvelopeUnwrapFailed, MsgEnvelopeUnwrapFailed},
	{service.ErrNoKeys, MsgNoKeys},
	{service.ErrKeysAlreadyExist, MsgKeysAlreadyExist},
	{service.ErrRecipientHasNoKeys, MsgRecipientHasNoKeys},
	{service.ErrAlreadyShared, MsgAlreadyShared},
	{service.ErrCannotShare, MsgCannotShare},
	{service.ErrForbidden, MsgAccessDenied},
	{service.ErrRecordNotFound, MsgDataNotFound},
	{session.ErrSessionCleared, MsgSessionCleared},
	{session.ErrPrivateKeyUnavailable, MsgPrivateKeyUnavailable},
	{session.ErrKeyUnavailable, MsgKeyUnavailable},
	{crypto.ErrDecryptionFailed, MsgDecryptionFailed},
	{crypto.ErrDerivationFailed, MsgDerivationFailed},
	{adapter.ErrInternalServerError, MsgServerUnavailable},
	{adapter.ErrBadGateway, MsgServerUnavailable},
}

// MessageFor returns the user-facing message for err. Order matters:
// specific errors are listed before the ones they wrap.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgInternalError
}
