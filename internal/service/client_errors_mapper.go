// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. notFound is returned for 404 responses that do not name a
// more specific cause; nil selects ErrRecordNotFound.
func mapAdapterError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound == nil {
		notFound = ErrRecordNotFound
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		switch msg {
		case adapter.DetailUsernameTaken:
			return ErrUserAlreadyExists
		case adapter.DetailAlreadyShared:
			return ErrAlreadyShared
		case adapter.DetailCannotShare:
			return ErrCannotShare
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == adapter.DetailIncorrectCredentials {
			return ErrWrongPassword
		}
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrForbidden):
		return ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case adapter.DetailUserNotFound:
			return ErrUserNotFound
		case adapter.DetailPublicKeyNotFound:
			return ErrRecipientHasNoKeys
		}
		return notFound
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
