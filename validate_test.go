package pull_test

import (
	"strconv"
	"testing"

	"github.com/teenjuna/pull"
	"github.com/teenjuna/pull/internal/testing/require"
	"github.com/teenjuna/pull/internal/testing/seqtest"
)

func TestValidate(t *testing.T) {
	even := func(e int) bool { return e%2 == 0 }
	tenfold := func(e int) int { return e * 10 }
	negate := func(e int) int { return -e }

	s := pull.Validate(pull.From([]int{1, 2, 3, 4, 5}), even, tenfold, negate)
	require.Equal(t, int64(5), s.Size())
	require.Equal(t, "ordered|sized", s.Props().String())
	require.Equal(t, []int{-1, 20, -3, 40, -5}, seqtest.Drain(t, s))
}

func TestValidateChangesType(t *testing.T) {
	big := func(e int) bool { return e >= 10 }

	s := pull.Validate(pull.Of(5, 12), big, strconv.Itoa, func(int) string { return "small" })
	require.Equal(t, []string{"small", "12"}, seqtest.Drain(t, s))
}

func TestValidateSplit(t *testing.T) {
	odd := func(e int) bool { return e%2 == 1 }
	keep := func(e int) int { return e }
	zero := func(int) int { return 0 }

	s := pull.Validate(pull.From([]int{1, 2, 3, 4}), odd, keep, zero)
	half := s.Split()
	require.NotNil(t, half)
	require.Equal(t, []int{1, 0}, seqtest.Drain(t, half))
	require.Equal(t, []int{3, 0}, seqtest.Drain(t, s))
}

func TestValidateRevokesSorted(t *testing.T) {
	s := pull.Validate(sorted(pull.From([]int{1, 2})), func(int) bool { return true }, func(e int) int { return e }, func(e int) int { return e })

	require.Equal(t, "ordered|sized", s.Props().String())
}

func TestValidatePanics(t *testing.T) {
	pred := func(int) bool { return true }
	id := func(e int) int { return e }

	require.PanicWithError(t, "source can't be nil", func() {
		pull.Validate[int, int](nil, pred, id, id)
	})

	require.PanicWithError(t, "valid can't be nil", func() {
		pull.Validate(pull.Of(1), nil, id, id)
	})

	require.PanicWithError(t, "ifValid can't be nil", func() {
		pull.Validate[int, int](pull.Of(1), pred, nil, id)
	})

	require.PanicWithError(t, "ifNotValid can't be nil", func() {
		pull.Validate[int, int](pull.Of(1), pred, id, nil)
	})
}
