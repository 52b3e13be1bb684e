package easycalc

import "fmt"

// CatchPanicOrError runs f and converts a panic into a returned error.
// The engine panics only on internal inconsistencies which cannot be caused
// by evaluation arguments; Eval uses this guard so that a corrupted backend
// surfaces as an error instead of crashing the caller.
func CatchPanicOrError(f func() error) error {
	var err error
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}
		}()
		err = f()
	}()
	return err
}
