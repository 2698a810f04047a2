package quickfn

import (
	"errors"
	"fmt"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestOutcomeGetOrFail(t *testing.T) {
	require.Equal(t, Ok(1).GetOrFail(t), 1)
}

func TestOutcomeMaybe(t *testing.T) {
	require.Equal(t, Ok(1).Maybe(), Just(1))
	require.Equal(
		t, Fail[uint8](errors.New("err")).Maybe(), NothingOf[uint8](),
	)
}

func TestNewOutcome(t *testing.T) {
	err := errors.New("err")
	require.Equal(t, Ok(1), NewOutcome(1, nil))
	require.Equal(t, Fail[int](err), NewOutcome(0, err))
}

func TestSafeCall(t *testing.T) {
	errBang := errors.New("bang")

	res := SafeCall(func() (int, error) { return 42, nil })
	require.Equal(t, Ok(42), res)

	res = SafeCall(func() (int, error) { return 0, errBang })
	require.True(t, res.IsErr())
	require.Equal(t, errBang, res.Err())

	res = SafeCall(func() (int, error) { panic("boom") })
	require.True(t, res.IsErr())
	require.ErrorContains(t, res.Err(), "boom")
}

func TestOutcomeMap(t *testing.T) {
	inc := func(i int) int { return i + 1 }

	f := func(i int) bool {
		return Ok(i).Map(inc) == Ok(inc(i))
	}

	require.NoError(t, quick.Check(f, nil))

	err := errors.New("err")
	require.Equal(t, Fail[int](err), Fail[int](err).Map(inc))
}

func TestMapOutcome(t *testing.T) {
	length := func(s string) int { return len(s) }

	require.Equal(t, Ok(3), MapOutcome(Ok("foo"), length))

	err := errors.New("err")
	require.Equal(t, Fail[int](err), MapOutcome(Fail[string](err), length))
}

func TestThenOutcomeChains(t *testing.T) {
	parsePositive := func(i int) Outcome[int] {
		if i < 0 {
			return Failf[int]("negative: %d", i)
		}
		return Ok(i)
	}

	f := func(i int) bool {
		res := ThenOutcome(Ok(i), parsePositive)
		if i < 0 {
			return res.IsErr()
		}
		return res == Ok(i)
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestOutcomeAndThenOrElse(t *testing.T) {
	divide := func(a, b int) Outcome[int] {
		if b == 0 {
			return Failf[int]("division by zero")
		}
		return Ok(a / b)
	}

	res := divide(10, 2).
		AndThen(func(v int) Outcome[int] { return Ok(v * 2) })
	require.Equal(t, Ok(10), res)

	res = divide(10, 0).
		AndThen(func(v int) Outcome[int] { return Ok(v * 2) }).
		OrElse(func() Outcome[int] { return Ok(-1) })
	require.Equal(t, Ok(-1), res)
}

func TestFirstError(t *testing.T) {
	err1 := fmt.Errorf("first")
	err2 := fmt.Errorf("second")

	require.NoError(t, FirstError(Ok(1), Ok(2)))
	require.Equal(t, err1, FirstError(Ok(1), Fail[int](err1),
		Fail[int](err2)))
}

func TestOutcomeUnpack(t *testing.T) {
	v, err := Ok(42).Unpack()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	errBang := errors.New("bang")
	v, err = Fail[int](errBang).Unpack()
	require.Equal(t, errBang, err)
	require.Zero(t, v)
}
