package lighting

import (
	"container/heap"

	"github.com/go-gl/mathgl/mgl32"
)

// SelectNearest returns copies of the lights closest to target.
//
// The result holds min(len(lights), maxCount) lights followed by Off()
// padding up to minCount. When every light fits it is returned in the
// order given; otherwise the kept lights are sorted nearest first and ties
// come back in no particular order. Negative counts are treated as zero.
// lights is only read.
func SelectNearest[L Variant[L]](lights []*L, target mgl32.Vec3, maxCount, minCount int) []L {
	maxCount = max(maxCount, 0)
	minCount = max(minCount, 0)

	if len(lights) <= maxCount {
		result := make([]L, 0, max(len(lights), minCount))
		for _, light := range lights {
			result = append(result, *light)
		}
		return padOff(result, minCount)
	}

	// Squared distance orders the same as distance without the sqrt.
	nearest := make(candidateHeap[L], 0, maxCount)
	for _, light := range lights {
		diff := (*light).WorldPosition().Sub(target)
		c := candidate[L]{distanceSq: diff.Dot(diff), light: light}
		if len(nearest) < maxCount {
			heap.Push(&nearest, c)
			continue
		}
		if maxCount > 0 && c.distanceSq < nearest[0].distanceSq {
			nearest[0] = c
			heap.Fix(&nearest, 0)
		}
	}

	result := make([]L, len(nearest), max(len(nearest), minCount))
	for i := len(nearest) - 1; i >= 0; i-- {
		result[i] = *heap.Pop(&nearest).(candidate[L]).light
	}
	return padOff(result, minCount)
}

func padOff[L Variant[L]](result []L, minCount int) []L {
	var zero L
	for len(result) < minCount {
		result = append(result, zero.Off())
	}
	return result
}

type candidate[L any] struct {
	distanceSq float32
	light      *L
}

// candidateHeap is a max-heap on distance: the root is the farthest light
// still kept, so it is the one evicted when a closer light shows up.
type candidateHeap[L any] []candidate[L]

func (h candidateHeap[L]) Len() int           { return len(h) }
func (h candidateHeap[L]) Less(i, j int) bool { return h[i].distanceSq > h[j].distanceSq }
func (h candidateHeap[L]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap[L]) Push(x any) { *h = append(*h, x.(candidate[L])) }

func (h *candidateHeap[L]) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}
