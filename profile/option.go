//go:build pprof

package profile

// setting applies one profiler setting to a control.
type setting func(control) control

// newControl creates a control with each setting applied in order.
func newControl(settings ...setting) control {
	var c control

	return c.with(settings...)
}

// with returns a copy of c with settings applied.
func (c control) with(settings ...setting) control {
	for _, s := range settings {
		c = s(c)
	}

	return c
}
