package recovery

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/altinn/designer-api/api/utils"
	"github.com/rs/zerolog/log"
	"github.com/urfave/negroni/v3"
)

// NewMiddleware recovers panics in handlers and answers with a JSON server error
func NewMiddleware() negroni.Handler {
	rec := negroni.NewRecovery()
	rec.PrintStack = true
	rec.Logger = &log.Logger
	rec.Formatter = &errorFormatter{}

	return negroni.HandlerFunc(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		rec.ServeHTTP(w, r, func(w http.ResponseWriter, r *http.Request) {
			// negroni writes the status before the formatter runs
			defer func() {
				if p := recover(); p != nil {
					w.Header().Set("Content-Type", "application/json; charset=utf-8")
					panic(p)
				}
			}()
			next(w, r)
		})
	})
}

type errorFormatter struct{}

// FormatPanicError writes the panic as an error body. The stack is only logged.
func (f *errorFormatter) FormatPanicError(w http.ResponseWriter, _ *http.Request, infos *negroni.PanicInformation) {
	body, err := json.Marshal(utils.UnexpectedError("Internal server error", fmt.Errorf("panic: %v", infos.RecoveredPanic)))
	if err != nil {
		return
	}
	_, _ = w.Write(body)
}
