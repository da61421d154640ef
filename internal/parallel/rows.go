// Package parallel schedules per-row rendering work across CPU workers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// bandsPerWorker controls scheduling granularity. More bands than
// workers lets a worker that lands on cheap rows (far from the set)
// take over bands from workers stuck on expensive interior rows.
const bandsPerWorker = 4

// Rows partitions [0, height) into contiguous row bands and executes
// fn(y0, y1) for every band across the given number of workers. Bands
// are claimed from an atomic cursor: scheduling order is not
// deterministic, but every row is processed exactly once. fn runs
// concurrently with itself and must only touch state owned by its rows.
//
// workers <= 0 uses one worker per available CPU. A single worker runs
// fn(0, height) on the calling goroutine. Rows returns after every band
// has completed.
func Rows(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height {
		workers = height
	}
	if workers == 1 {
		fn(0, height)
		return
	}

	bands := workers * bandsPerWorker
	if bands > height {
		bands = height
	}
	bandH := (height + bands - 1) / bands

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				b := int(cursor.Add(1)) - 1
				y0 := b * bandH
				if y0 >= height {
					return
				}
				y1 := y0 + bandH
				if y1 > height {
					y1 = height
				}
				fn(y0, y1)
			}
		}()
	}
	wg.Wait()
}
