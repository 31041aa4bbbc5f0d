package report

// mergeInto copies src's pairs into dst. On a key collision the value
// from src wins, which is the precedence both the customFields spread
// and the factor-field merge rely on.
func mergeInto(dst, src map[string]any) {
	for key, value := range src {
		dst[key] = value
	}
}
