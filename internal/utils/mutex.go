package utils

import "sync"

var mu sync.Mutex

// ExecuteWithMutex serializes calls into GDAL.
func ExecuteWithMutex(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
