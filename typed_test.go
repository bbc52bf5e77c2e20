package expiry

import (
	"errors"
	"reflect"
	"time"
)

type token struct {
	Value string
}

func (s *ExpirySuite) TestTypedGet() {
	c := New()
	s.Require().NoError(c.Set("name", "alice"))
	s.Require().NoError(c.Set("token", &token{Value: "abc"}))

	name, ok, err := Get[string](c, "name")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("alice", name)

	tok, ok, err := Get[*token](c, "token")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("abc", tok.Value)

	// interfaces match on dynamic type
	v, ok, err := Get[any](c, "name")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("alice", v)
}

func (s *ExpirySuite) TestTypedGetMissing() {
	c := New(WithClock(s.clk))
	s.Require().NoError(c.SetWithTTL("n", 7, time.Second))
	s.clk.Advance(time.Minute)

	n, ok, err := Get[int](c, "n")
	s.Require().NoError(err)
	s.False(ok)
	s.Zero(n)

	_, ok, err = Get[int](c, "never-set")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ExpirySuite) TestTypedGetMismatch() {
	c := New()
	s.Require().NoError(c.Set("n", "seven"))

	n, ok, err := Get[int](c, "n")
	s.Require().ErrorIs(err, ErrTypeMismatch)
	s.False(ok)
	s.Zero(n)

	var mismatch *TypeMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.Equal("n", mismatch.Key)
	s.Equal(reflect.TypeFor[string](), mismatch.Stored)
	s.Equal(reflect.TypeFor[int](), mismatch.Requested)
	s.Contains(err.Error(), `key "n"`)
}

func (s *ExpirySuite) TestMustGet() {
	c := New()
	s.Require().NoError(c.Set("n", 7))

	s.Equal(7, MustGet[int](c, "n"))
	s.Equal("", MustGet[string](c, "n"))
	s.Equal(0, MustGet[int](c, "missing"))
}
