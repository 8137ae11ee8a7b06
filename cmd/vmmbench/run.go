package main

import (
	"sync"
	"time"

	"github.com/oliverbestmann/vmm"
)

type result struct {
	Bounds   vmm.Cuboid[float64]
	Points   int
	Duration time.Duration
}

// run transforms the points using a pool of workers and returns the
// bounding box of the transformed points.
func run(tr vmm.Mat4d, points []vmm.Vec3d, workers int) result {
	start := time.Now()

	workers = max(1, min(workers, len(points)))
	chunkSize := (len(points) + workers - 1) / workers

	bounds := make([]vmm.Cuboid[float64], workers)
	counts := make([]int, workers)

	var wg sync.WaitGroup

	for w := range workers {
		lo := min(len(points), w*chunkSize)
		hi := min(len(points), lo+chunkSize)

		wg.Add(1)
		go func() {
			defer wg.Done()

			chunk := points[lo:hi]
			for idx, point := range chunk {
				chunk[idx] = vmm.TransformPoint3D(tr, point)
			}

			bounds[w] = vmm.BoxOfPoints(chunk...)
			counts[w] = len(chunk)
		}()
	}

	wg.Wait()

	res := result{Duration: time.Since(start)}

	for w := range workers {
		if counts[w] == 0 {
			continue
		}

		if res.Points == 0 {
			res.Bounds = bounds[w]
		} else {
			res.Bounds = res.Bounds.Union(bounds[w])
		}

		res.Points += counts[w]
	}

	return res
}

func randomPoints(count int) []vmm.Vec3d {
	points := make([]vmm.Vec3d, count)
	for idx := range points {
		points[idx] = vmm.RandomVec3[float64]()
	}

	return points
}
