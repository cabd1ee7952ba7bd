// Package obs holds the request-scoped logging helpers shared by the
// HTTP layer and the route backends.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey is the context key under which the request id travels.
// The HTTP middleware sets it and Time echoes it, so a backend call
// can be matched to the request that triggered it.
const RequestIDKey ctxKey = "req_id"

// Time reports the duration of a named operation when the returned
// func runs. Defer it with the address of a named error return and a
// failing call logs its error on the same line:
//
//	defer obs.Time(ctx, "osrm.Route")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		elapsed := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, elapsed.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, elapsed.Milliseconds())
	}
}
