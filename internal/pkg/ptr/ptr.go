package ptr

func To[T any](v T) *T {
	return &v
}

// NonEmpty maps "" to nil so optional text columns stay absent instead of blank.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
