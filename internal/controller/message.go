package controller

import (
	"errors"

	"github.com/gemgeek/alx-listing-app-deployed/internal/apiclient"
)

// ErrorMessage picks the text a page shows for a failed read: the server's
// message, then the error's own text (for a bare non-2xx that is the status
// line), then fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

// submitErrorMessage is the booking form's variant: a non-2xx reply without
// a server message shows fallback instead of the status line.
func submitErrorMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		return fallback
	}
	return ErrorMessage(err, fallback)
}
