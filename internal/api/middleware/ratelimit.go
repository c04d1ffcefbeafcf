package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"

	"github.com/shadyltdcry-byte/classiklust/internal/api/apierr"
)

// SpinCooldown enforces the wheel cooldown per player id: a token bucket
// refilling one spin per interval with the given burst. The engine itself
// assumes no rate limiting; the cooldown is this caller-side policy.
//
// Returns the middleware and a stop func for the limiter cache's eviction
// loop.
func SpinCooldown(interval time.Duration, burst int) (func(http.Handler) http.Handler, func()) {
	limiters := ttlcache.New[string, *rate.Limiter](
		ttlcache.WithTTL[string, *rate.Limiter](30 * time.Minute),
	)
	go limiters.Start()

	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := mux.Vars(r)["id"]
			item, _ := limiters.GetOrSet(id, rate.NewLimiter(rate.Every(interval), burst))
			if !item.Value().Allow() {
				apierr.WriteError(w, apierr.NewSpinCooldownError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	return mw, limiters.Stop
}
