package easymeasure

// Measure starts the measurement, runs fn and stops the measurement.
// The measurement is stopped even when fn returns an error.
func (r *Registry) Measure(key string, fn func() error) error {
	r.Start(key)
	err := fn()
	if stopErr := r.Stop(key); stopErr != nil && err == nil {
		return stopErr
	}

	return err
}

// Track starts the measurement and returns the function that stops it,
// so that it can be deferred:
//
//	defer registry.Track("query")()
func (r *Registry) Track(key string) func() error {
	r.Start(key)
	return func() error {
		return r.Stop(key)
	}
}
