package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Error Representation of errors in the API. These are divided into a small
// number of categories, essentially distinguished by whose fault the
// error is; i.e., is this error:
//   - a transient problem with the service, so worth trying again?
//   - not going to work until the user takes some other action, e.g., picking another release?
type Error struct {
	Type Type
	// a message that can be printed out for the user
	Message string `json:"message"`
	// the underlying error that can be e.g., logged for developers to look at
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Type Type of error
type Type string

const (
	// Server The operation looked fine on paper, but something went wrong
	Server Type = "server"
	// Missing The thing you mentioned, whatever it is, just doesn't exist
	Missing Type = "missing"
	// User The operation was well-formed, but you asked for something that
	// can't happen at present (e.g., because the release never succeeded)
	User Type = "user"
	// Forbidden The caller is not allowed to do this
	Forbidden Type = "forbidden"
)

type jsonError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

// MarshalJSON Writes error as json
func (e *Error) MarshalJSON() ([]byte, error) {
	var errMsg string
	if e.Err != nil {
		errMsg = e.Err.Error()
	}
	return json.Marshal(&jsonError{
		Type:    string(e.Type),
		Message: e.Message,
		Err:     errMsg,
	})
}

// UnmarshalJSON Parses json
func (e *Error) UnmarshalJSON(data []byte) error {
	var jsonable jsonError
	if err := json.Unmarshal(data, &jsonable); err != nil {
		return err
	}
	e.Type = Type(jsonable.Type)
	e.Message = jsonable.Message
	if jsonable.Err != "" {
		e.Err = errors.New(jsonable.Err)
	}
	return nil
}

// UnexpectedError any unexpected error
func UnexpectedError(message string, underlyingError error) error {
	return &Error{
		Type:    Server,
		Err:     underlyingError,
		Message: message,
	}
}

// TypeMissingError indication of underlying type missing
func TypeMissingError(message string, underlyingError error) error {
	return &Error{
		Type:    Missing,
		Err:     underlyingError,
		Message: message,
	}
}

// NotFoundError No found error
func NotFoundError(message string) error {
	return &Error{
		Type:    Missing,
		Message: message,
	}
}

// ValidationError Used for indication of validation errors
func ValidationError(kind, message string) error {
	return &Error{
		Type:    User,
		Err:     fmt.Errorf("%s failed validation", kind),
		Message: message,
	}
}

// ForbiddenError Used for indication of missing permissions
func ForbiddenError(message string) error {
	return &Error{
		Type:    Forbidden,
		Message: message,
	}
}

// CoverAllError Cover all other errors
func CoverAllError(err error, errorType Type) *Error {
	return &Error{
		Type:    errorType,
		Err:     err,
		Message: `Error: ` + err.Error(),
	}
}

func writeErrorWithCode(w http.ResponseWriter, r *http.Request, code int, err *Error) {
	// Clients asking for plain text get the message only,
	// everybody else gets the JSON representation.
	if accept := r.Header.Get("Accept"); accept != "" && !strings.Contains(accept, "json") && strings.Contains(accept, "text/plain") {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(code)
		_, _ = fmt.Fprint(w, err.Message)
		return
	}

	body, encodeErr := json.Marshal(err)
	if encodeErr != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprintf(w, "Error encoding error response: %s\n\nOriginal error: %s", encodeErr.Error(), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// JSONResponse Marshals response with header
func JSONResponse(w http.ResponseWriter, r *http.Request, result interface{}) {
	JSONResponseWithCode(w, r, http.StatusOK, result)
}

// JSONResponseWithCode Marshals response with header and the given status code
func JSONResponseWithCode(w http.ResponseWriter, r *http.Request, code int, result interface{}) {
	body, err := json.Marshal(result)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err = w.Write(body); err != nil {
		log.Ctx(r.Context()).Err(err).Msg("failed to write response")
	}
}

// ErrorResponse Marshals error
func ErrorResponse(w http.ResponseWriter, r *http.Request, apiError error) {
	var outErr *Error
	if !errors.As(apiError, &outErr) {
		outErr = CoverAllError(apiError, Server)
	}

	logger := log.Ctx(r.Context())
	var code int
	switch outErr.Type {
	case Missing:
		code = http.StatusNotFound
	case User:
		code = http.StatusBadRequest
	case Forbidden:
		code = http.StatusForbidden
	default:
		code = http.StatusInternalServerError
	}

	if code >= http.StatusInternalServerError {
		logger.Error().Err(outErr.Err).Msg(outErr.Message)
	} else {
		logger.Info().Err(outErr.Err).Msg(outErr.Message)
	}

	writeErrorWithCode(w, r, code, outErr)
}
