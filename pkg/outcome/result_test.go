package outcome

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// divide is the classic fallible collaborator: it produces Results, it is
// not part of the containers themselves.
func divide(a, b float64) Result[float64, string] {
	if b == 0 {
		return Err[float64, string]("Division by zero.")
	}
	return Ok[float64, string](a / b)
}

func TestOk_QueriesAndUnwrap(t *testing.T) {
	t.Parallel()

	r := Ok[int, string](42)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Unwrap())
}

func TestErr_QueriesAndDefault(t *testing.T) {
	t.Parallel()

	r := Err[int, string]("broken")

	assert.True(t, r.IsErr())
	assert.False(t, r.IsOk())
	assert.Equal(t, -1, r.UnwrapOr(-1))
}

func TestQueries_Idempotent(t *testing.T) {
	t.Parallel()

	r := Ok[int, string](7)
	before := r

	for i := 0; i < 5; i++ {
		assert.True(t, r.IsOk())
		assert.False(t, r.IsErr())
	}

	assert.Equal(t, before, r, "queries must not mutate the container")
}

func TestUnwrap_PanicsWithWrappedError(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("no such row")
	r := Err[int](wrapped)

	assert.PanicsWithValue(t, wrapped, func() { r.Unwrap() })
}

func TestUnwrapOr_OkKeepsValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, Ok[int, string](10).UnwrapOr(-1))
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()

	recovered := Err[int, string]("expired").UnwrapOrElse(func(e string) int {
		return len(e)
	})
	assert.Equal(t, 7, recovered)

	called := false
	v := Ok[int, string](3).UnwrapOrElse(func(string) int {
		called = true
		return 0
	})
	assert.Equal(t, 3, v)
	assert.False(t, called, "fallback must not run on Ok")
}

func TestExpect_ReplacesError(t *testing.T) {
	t.Parallel()

	r := Err[int, string]("low-level detail")

	assert.PanicsWithValue(t, "config must already be validated", func() {
		r.Expect("config must already be validated")
	})
	assert.Equal(t, 9, Ok[int, string](9).Expect("unreachable"))
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", Err[int, string]("boom").UnwrapErr())

	assert.PanicsWithValue(t, "called UnwrapErr on an Ok value: 42", func() {
		Ok[int, string](42).UnwrapErr()
	})
}

func TestExpectErr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", Err[int, string]("boom").ExpectErr("unreachable"))

	assert.PanicsWithValue(t, "wanted a failure here", func() {
		Ok[int, string](1).ExpectErr("wanted a failure here")
	})
}

func TestAndThen_ShortCircuits(t *testing.T) {
	t.Parallel()

	called := false
	orig := Err[int, string]("first failure")

	got := AndThen(orig, func(v int) Result[string, string] {
		called = true
		return Ok[string, string](strconv.Itoa(v))
	})

	assert.False(t, called, "continuation must never run on Err")
	assert.Equal(t, Err[string, string]("first failure"), got)
}

func TestAndThen_ChainsOnOk(t *testing.T) {
	t.Parallel()

	got := AndThen(Ok[int, string](21), func(v int) Result[int, string] {
		return Ok[int, string](v * 2)
	})

	require.True(t, got.IsOk())
	assert.Equal(t, 42, got.Unwrap())
}

func TestMap_PreservesVariant(t *testing.T) {
	t.Parallel()

	tripled := Map(Ok[int, string](5), func(v int) int { return v * 3 })
	assert.Equal(t, 15, tripled.Unwrap())

	called := false
	still := Map(Err[int, string]("boom"), func(v int) int {
		called = true
		return v * 5
	})
	assert.False(t, called)
	assert.True(t, still.IsErr())
	assert.Equal(t, "boom", still.UnwrapErr())
}

func TestMatch_ExactlyOneHandlerRuns(t *testing.T) {
	t.Parallel()

	var okRuns, errRuns int

	out := Match(Ok[int, string](4),
		func(v int) string { okRuns++; return strconv.Itoa(v) },
		func(e string) string { errRuns++; return e })
	assert.Equal(t, "4", out)
	assert.Equal(t, 1, okRuns)
	assert.Equal(t, 0, errRuns)

	okRuns, errRuns = 0, 0
	out = Match(Err[int, string]("down"),
		func(v int) string { okRuns++; return strconv.Itoa(v) },
		func(e string) string { errRuns++; return e })
	assert.Equal(t, "down", out)
	assert.Equal(t, 0, okRuns)
	assert.Equal(t, 1, errRuns)
}

func TestUnpack_MutualExclusivity(t *testing.T) {
	t.Parallel()

	v, e := Ok[int, string](8).Unpack()
	assert.Equal(t, 8, v)
	assert.Empty(t, e, "error slot of an Ok stays zero")

	v, e = Err[int, string]("gone").Unpack()
	assert.Zero(t, v, "value slot of an Err stays zero")
	assert.Equal(t, "gone", e)
}

func TestConversions_RoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Ok[int, string](3).Ok().Unwrap())
	assert.Equal(t, "lost", Err[int, string]("lost").Err().Unwrap())

	assert.True(t, Ok[int, string](3).Err().IsNone())
	assert.True(t, Err[int, string]("lost").Ok().IsNone())
}

func TestFrom_PairConversion(t *testing.T) {
	t.Parallel()

	r := From(11, nil)
	require.True(t, r.IsOk())
	assert.Equal(t, 11, r.Unwrap())

	bad := errors.New("dial refused")
	r = From(0, bad)
	require.True(t, r.IsErr())
	assert.Equal(t, bad, r.UnwrapErr())
}

func TestZeroValue_IsErr(t *testing.T) {
	t.Parallel()

	var r Result[int, string]

	assert.True(t, r.IsErr())
	assert.Equal(t, "", r.UnwrapErr())
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, Ok[int, string](5) == Ok[int, string](5))
	assert.True(t, Err[int, string]("x") == Err[int, string]("x"))
	assert.False(t, Ok[int, string](5) == Err[int, string]("x"))
	assert.False(t, Ok[int, string](5) == Ok[int, string](6))
}

func TestExtractor_SharedValueChannel(t *testing.T) {
	t.Parallel()

	pull := func(x Extractor[string]) string { return x.UnwrapOr("fallback") }

	assert.Equal(t, "hit", pull(Ok[string, error]("hit")))
	assert.Equal(t, "hit", pull(Some("hit")))
	assert.Equal(t, "fallback", pull(Err[string](errors.New("miss"))))
	assert.Equal(t, "fallback", pull(None[string]()))
}

func TestDivide_EndToEnd(t *testing.T) {
	t.Parallel()

	good := divide(4, 2)
	require.True(t, good.IsOk())
	assert.Equal(t, 2.0, good.Unwrap())

	bad := divide(4, 0)
	require.True(t, bad.IsErr())
	assert.Equal(t, -1.0, bad.UnwrapOr(-1))
	assert.PanicsWithValue(t, "Division by zero.", func() { bad.Unwrap() })
}
