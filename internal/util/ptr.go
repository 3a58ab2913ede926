package util

// IntPtr returns a pointer to the given int64.
func IntPtr(i int64) *int64 {
	return &i
}
