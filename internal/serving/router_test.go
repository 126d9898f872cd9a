package serving

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// pickAll runs pick once for every possible random value in [0, 100) and
// returns how often each served entity was chosen.
func pickAll(t *testing.T, routes []domain.Route) map[string]int {
	t.Helper()

	picks := make(map[string]int)
	for value := 0; value < 100; value++ {
		value := value
		r := newRouter(func(int) int { return value })

		name, err := r.pick(routes)
		require.NoError(t, err)
		picks[name]++
	}

	return picks
}

func TestRouter_PickMatchesTrafficPercentages(t *testing.T) {
	picks := pickAll(t, []domain.Route{
		{ServedModelName: "blue", TrafficPercentage: 30},
		{ServedModelName: "green", TrafficPercentage: 70},
	})

	require.Equal(t, map[string]int{"blue": 30, "green": 70}, picks)
}

func TestRouter_NeverPicksZeroPercentRoutes(t *testing.T) {
	picks := pickAll(t, []domain.Route{
		{ServedModelName: "retired", TrafficPercentage: 0},
		{ServedModelName: "live", TrafficPercentage: 100},
	})

	require.Equal(t, map[string]int{"live": 100}, picks)
}

func TestRouter_NoRoutes(t *testing.T) {
	r := newRouter(nil)

	_, err := r.pick(nil)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
