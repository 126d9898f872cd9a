package serving

import (
	"math/rand/v2"

	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// router picks a served entity for one request by weighted random choice over
// the endpoint's traffic routes.
type router struct {
	// intn returns a random int in [0, n). Injectable for deterministic tests.
	intn func(n int) int
}

func newRouter(intn func(n int) int) router {
	if intn == nil {
		intn = rand.IntN
	}

	return router{intn: intn}
}

// pick returns the name of the served entity that should handle the request.
// Routes with zero traffic percentage are never picked.
func (r router) pick(routes []domain.Route) (string, error) {
	total := 0
	for _, route := range routes {
		total += route.TrafficPercentage
	}
	if total <= 0 {
		return "", serrors.With(serrors.ErrUnavailable, "endpoint has no traffic routes")
	}

	n := r.intn(total)
	for _, route := range routes {
		n -= route.TrafficPercentage
		if n < 0 {
			return route.ServedModelName, nil
		}
	}

	return routes[len(routes)-1].ServedModelName, nil
}
