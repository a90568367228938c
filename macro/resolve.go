package macro

import (
	"strconv"

	"github.com/inputremapd/inputremapd/errs"
)

// resolveInt resolves a Value to an integer, looking it up in the
// Shared Variable Store at the point of use if it's a $var reference.
// A $var with no prior Set is treated as 0, matching Add's base case.
func (rt *Runtime) resolveInt(v Value) (int64, error) {
	if v.IsVar {
		stored, ok := rt.Store.Get(v.Var)
		if !ok {
			return 0, nil
		}

		if stored.IsInt {
			return stored.Int, nil
		}

		n, err := strconv.ParseInt(stored.Str, 10, 64)
		if err != nil {
			return 0, &errs.MacroRuntime{Message: "variable " + v.Var + " does not hold an integer"}
		}

		return n, nil
	}

	if v.IsString {
		n, err := strconv.ParseInt(v.Str, 10, 64)
		if err != nil {
			return 0, &errs.MacroRuntime{Message: "value " + v.Str + " is not an integer"}
		}

		return n, nil
	}

	return v.Int, nil
}

// resolveComparable resolves a Value to a string for use in if_eq's
// equality test, so an int literal and a numeric $var compare equal
// when their textual form matches.
func (rt *Runtime) resolveComparable(v Value) (string, error) {
	if v.IsVar {
		stored, ok := rt.Store.Get(v.Var)
		if !ok {
			return "", nil
		}

		if stored.IsInt {
			return strconv.FormatInt(stored.Int, 10), nil
		}

		return stored.Str, nil
	}

	if v.IsString {
		return v.Str, nil
	}

	return strconv.FormatInt(v.Int, 10), nil
}
