package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Detail messages the backend puts in error bodies.
const (
	DetailUserNotFound            = "User not found"
	DetailUsernameTaken           = "Username already registered"
	DetailIncorrectCredentials    = "Incorrect username or password"
	DetailCouldNotValidate        = "Could not validate credentials"
	DetailAlreadyShared           = "This credential is already shared with this user"
	DetailCannotShare             = "Cannot share this credential"
	DetailPublicKeyNotFound       = "User public key not found"
	DetailInsufficientPermissions = "Insufficient permissions"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorDetail(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorDetail unwraps a {"detail": "..."} body; other bodies are returned
// trimmed.
func errorDetail(raw []byte) string {
	body := strings.TrimSpace(string(raw))

	var payload struct {
		Detail any `json:"detail"`
	}
	if strings.HasPrefix(body, "{") && json.Unmarshal([]byte(body), &payload) == nil {
		if detail, ok := payload.Detail.(string); ok {
			return detail
		}
	}
	return body
}
