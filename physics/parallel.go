package physics

import (
	"runtime"
	"sync"
)

// parallelFor runs fn(i) for i in [0,n) across goroutines chunked by
// GOMAXPROCS, joining before returning. This is the join-before-continue
// worker-pool pattern used for the kernel's embarrassingly-parallel
// regions (particle integration, gravity, per-collider resolve) — the same
// goroutine+WaitGroup shape used for background simulation stepping
// elsewhere in the retrieved corpus, just run to completion inline rather
// than on a ticker.
func parallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// parallelForIndices runs fn(idx[k]) for every k, chunked the same way as
// parallelFor. It is used to drive a graph-colored batch of face indices
// where concurrent iterations are known not to touch shared particles.
func parallelForIndices(idx []int, fn func(i int)) {
	parallelFor(len(idx), func(k int) { fn(idx[k]) })
}
