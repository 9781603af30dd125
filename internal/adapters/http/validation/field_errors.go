package validation

// FieldError is one failure recorded against a request field. Err keeps the
// underlying decode error, when there is one, so later stages can classify it.
type FieldError struct {
	Message string
	Err     error
}

// FieldErrors collects failures per field key in the order keys were first
// seen. Keys are JSON-path style ("$.id"); the zero value is ready to use.
type FieldErrors struct {
	keys   []string
	errors map[string][]FieldError
}

// Add records a failure for key.
func (f *FieldErrors) Add(key, message string, err error) {
	if f.errors == nil {
		f.errors = make(map[string][]FieldError)
	}
	if _, seen := f.errors[key]; !seen {
		f.keys = append(f.keys, key)
	}
	f.errors[key] = append(f.errors[key], FieldError{Message: message, Err: err})
}

// Replace swaps every failure recorded for key with errs.
func (f *FieldErrors) Replace(key string, errs ...FieldError) {
	if _, seen := f.errors[key]; !seen {
		return
	}
	f.errors[key] = errs
}

// Keys returns the recorded keys in insertion order.
func (f *FieldErrors) Keys() []string {
	return f.keys
}

// Get returns the failures recorded for key.
func (f *FieldErrors) Get(key string) []FieldError {
	return f.errors[key]
}

// Has reports whether any failure was recorded for key.
func (f *FieldErrors) Has(key string) bool {
	return len(f.errors[key]) > 0
}

// Len returns the number of keys with at least one failure.
func (f *FieldErrors) Len() int {
	n := 0
	for _, k := range f.keys {
		if len(f.errors[k]) > 0 {
			n++
		}
	}
	return n
}
