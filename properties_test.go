package pull_test

import (
	"testing"

	"github.com/teenjuna/pull"
	"github.com/teenjuna/pull/internal/testing/require"
)

func TestPropsIntersect(t *testing.T) {
	all := pull.Props{Ordered: true, Sized: true, Sorted: true, Distinct: true}

	require.Equal(t, all, all.Intersect(all))
	require.Equal(t, pull.Props{}, all.Intersect(pull.Props{}))
	require.Equal(t,
		pull.Props{Ordered: true},
		all.Intersect(pull.Props{Ordered: true, Distinct: false}),
	)
	require.Equal(t,
		pull.Props{Sized: true, Sorted: true},
		pull.Props{Ordered: true, Sized: true, Sorted: true}.Intersect(pull.Props{Sized: true, Sorted: true, Distinct: true}),
	)
}

func TestPropsWithout(t *testing.T) {
	all := pull.Props{Ordered: true, Sized: true, Sorted: true, Distinct: true}

	require.Equal(t, pull.Props{Ordered: true, Sorted: true, Distinct: true}, all.WithoutSized())
	require.Equal(t, pull.Props{Ordered: true, Sized: true, Distinct: true}, all.WithoutSorted())
	require.Equal(t, pull.Props{Ordered: true, Sized: true, Sorted: true}, all.WithoutDistinct())

	// Revoking an absent flag changes nothing.
	require.Equal(t, pull.Props{}, pull.Props{}.WithoutSized().WithoutSorted().WithoutDistinct())
}

func TestPropsString(t *testing.T) {
	require.Equal(t, "none", pull.Props{}.String())
	require.Equal(t, "ordered", pull.Props{Ordered: true}.String())
	require.Equal(t, "sized|distinct", pull.Props{Sized: true, Distinct: true}.String())
	require.Equal(t,
		"ordered|sized|sorted|distinct",
		pull.Props{Ordered: true, Sized: true, Sorted: true, Distinct: true}.String(),
	)
}
