package restapi

import (
	"context"
	"net/http"
	"strings"
)

type stopPairKey struct{}

// StopPair carries the validated from/to query parameters of a request.
type StopPair struct {
	From string
	To   string
}

// withStopPair validates the from/to query parameters and injects them into
// the request context. Missing parameters fail with per-field messages.
func (api *RestAPI) withStopPair(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from := strings.TrimSpace(r.URL.Query().Get("from"))
		to := strings.TrimSpace(r.URL.Query().Get("to"))

		fieldErrors := make(map[string][]string)
		if from == "" {
			fieldErrors["from"] = []string{"required"}
		}
		if to == "" {
			fieldErrors["to"] = []string{"required"}
		}
		if len(fieldErrors) > 0 {
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}

		ctx := context.WithValue(r.Context(), stopPairKey{}, StopPair{From: from, To: to})
		next(w, r.WithContext(ctx))
	})
}

// stopPairFromContext retrieves the pair injected by withStopPair.
func stopPairFromContext(ctx context.Context) StopPair {
	pair, _ := ctx.Value(stopPairKey{}).(StopPair)
	return pair
}
