package improc

import "time"

// TimeOne returns how long a single call to f takes.
func TimeOne(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// TimeMany calls f n times and returns the mean duration per call.
func TimeMany(f func(), n int) time.Duration {
	if n <= 0 {
		return 0
	}
	start := time.Now()
	for range n {
		f()
	}
	return time.Since(start) / time.Duration(n)
}
