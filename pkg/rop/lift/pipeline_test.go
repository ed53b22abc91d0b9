package lift

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// seeds are (value, error) pairs standing in for the result a pipeline
// carries into the next stage.
type seed struct {
	name string
	in   string
	err  *parseError
}

func TestAndThenAfterMapErr_EqualsMapErrAfterAndThen(t *testing.T) {
	t.Parallel()
	seeds := []seed{
		{name: "success seed, step succeeds", in: "10"},
		{name: "success seed, step fails", in: "ten"},
		{name: "failed seed", in: "10", err: &parseError{input: "upstream"}},
	}

	for _, s := range seeds {
		t.Run(s.name, func(t *testing.T) {
			// seed.map_err(convert).and_then(lift(f))
			mappedIn, mappedErr := MapErr(s.in, s.err, fromParse)
			left, leftErr := AndThen(mappedIn, mappedErr, Lift(parse, fromParse))

			// seed.and_then(f).map_err(convert)
			n, err := AndThen(s.in, s.err, parse)
			right, rightErr := MapErr(n, err, fromParse)

			assert.Equal(t, right, left)
			assert.Equal(t, rightErr, leftErr)
		})
	}
}

func TestAndThen_FailedSeedSkipsStep(t *testing.T) {
	t.Parallel()
	called := false
	upstream := &parseError{input: "up"}

	out, err := AndThen("5", upstream, func(s string) (int, *parseError) {
		called = true
		return parse(s)
	})

	assert.False(t, called)
	assert.Zero(t, out)
	assert.Same(t, upstream, err)
}

func TestMapErr_ZeroErrorSkipsConvert(t *testing.T) {
	t.Parallel()
	called := false

	out, err := MapErr(3, error(nil), func(err error) error {
		called = true
		return err
	})

	assert.False(t, called)
	assert.Equal(t, 3, out)
	assert.NoError(t, err)
}

func TestCompose(t *testing.T) {
	t.Parallel()
	half := func(n int) (int, error) {
		if n%2 != 0 {
			return 0, errors.New("odd")
		}
		return n / 2, nil
	}
	atoi := Lift(parse, ToError[*parseError])
	parseHalf := Compose(atoi, half)

	n, err := parseHalf("8")
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = parseHalf("7")
	assert.EqualError(t, err, "odd")

	_, err = parseHalf("seven")
	assert.EqualError(t, err, `cannot parse "seven"`)

	itoa := func(n int) (string, error) { return strconv.Itoa(n), nil }
	roundTrip := Compose(parseHalf, itoa)
	s, err := roundTrip("20")
	assert.NoError(t, err)
	assert.Equal(t, "10", s)
}
