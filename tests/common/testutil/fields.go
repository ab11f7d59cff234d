//go:build unit || e2e

package testutil

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Fields applies several mutations in order.
func Fields(muts ...func(map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		for _, f := range muts {
			f(m)
		}
	}
}
