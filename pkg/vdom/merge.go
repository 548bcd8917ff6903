package vdom

// Merge returns the union of two attribute maps without mutating either.
// Keys present in both take their value from b. It always yields a map,
// even from two empty inputs.
func Merge(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
