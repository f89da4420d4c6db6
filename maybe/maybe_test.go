package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/pbst/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	nothing := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		nothing = true
	}
	if w != 0 || !nothing {
		t.Errorf("expected y to match Nothing, didn't (w = %#v)", w)
	}
}

func TestMaybeMatchNonComparable(t *testing.T) {
	x := Just([]int{1, 2, 3}) // slices are not comparable
	var v []int
	switch m := x.Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected Just([1 2 3]) to match Just, didn't")
	}
	if len(v) != 3 {
		t.Errorf("expected v to have length 3, is %v", v)
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just("a").Get(); !ok || v != "a" {
		t.Errorf("expected Just(\"a\").Get() to return (a, true), returned (%q, %v)", v, ok)
	}
	if v, ok := Nothing[string]().Get(); ok || v != "" {
		t.Errorf("expected Nothing.Get() to return (\"\", false), returned (%q, %v)", v, ok)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v := xx.WithDefault(0); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	s := Map(strconv.Itoa, Just(10))
	if v := s.WithDefault(""); v != "10" {
		t.Logf("itoa(10) = %q", v)
		t.Error("expected Map(itoa, Just 10) to return \"10\", didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	if _, ok := yy.Get(); ok {
		t.Error("expected Nothing.Map(…) to be Nothing, isn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	var isGreater bool
	switch m := AndThen(gt0, Just(7)).Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if _, ok := AndThen(gt0, Just(-1)).Get(); ok {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
	if _, ok := AndThen(gt0, Nothing[int]()).Get(); ok {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}
