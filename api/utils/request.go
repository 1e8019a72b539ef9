package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// GetBearerTokenFromHeader Gets bearer token from request header
func GetBearerTokenFromHeader(r *http.Request) (string, error) {
	authorizationHeader := r.Header.Get("Authorization")
	authArr := strings.Split(authorizationHeader, " ")
	if len(authArr) != 2 || !strings.EqualFold(authArr[0], "bearer") || authArr[1] == "" {
		return "", ForbiddenError("Authentication header is invalid")
	}

	return authArr[1], nil
}

// GetOptionalIntQuery parses an optional integer query parameter
func GetOptionalIntQuery(r *http.Request, name string) (*int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, ValidationError("Query", fmt.Sprintf("%s must be an integer", name))
	}
	return &parsed, nil
}

// DecodeJSONBody reads the request body into target
func DecodeJSONBody(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return ValidationError("Request", "Request body is empty")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &syntaxErr):
			return ValidationError("Request", fmt.Sprintf("Request body is malformed at position %d", syntaxErr.Offset))
		default:
			return ValidationError("Request", fmt.Sprintf("Request body could not be read: %v", err))
		}
	}
	return nil
}
