// Implements the ResourcePool, the fixed set of transmission slots a policy
// schedules onto: the contention channel, MU-MIMO streams, or OFDMA
// sub-channels.

package sim

import (
	"github.com/sirupsen/logrus"
)

// Resource is one unit of transmission capacity. A resource carries at most
// one in-flight transmission at a time; the busy flag is the only state.
type Resource struct {
	BandwidthHz float64
	busy        bool
}

// ResourcePool holds the run's resources. The pool is created once at setup
// and reused for the whole run; resources are never added or removed mid-run.
type ResourcePool struct {
	resources []Resource
}

// NewResourcePool creates one resource per entry of bandwidthsHz.
func NewResourcePool(bandwidthsHz []float64) *ResourcePool {
	rp := &ResourcePool{resources: make([]Resource, len(bandwidthsHz))}
	for i, bw := range bandwidthsHz {
		rp.resources[i] = Resource{BandwidthHz: bw}
	}
	return rp
}

// NewUniformPool creates n resources that all share the same bandwidth
// descriptor (contention channel, or interchangeable spatial streams).
func NewUniformPool(n int, bandwidthHz float64) *ResourcePool {
	bws := make([]float64, n)
	for i := range bws {
		bws[i] = bandwidthHz
	}
	return NewResourcePool(bws)
}

// FindFree returns the lowest-indexed free resource. The fixed tie-break
// keeps scheduling reproducible across identical runs.
func (rp *ResourcePool) FindFree() (int, bool) {
	for i := range rp.resources {
		if !rp.resources[i].busy {
			return i, true
		}
	}
	return -1, false
}

// Reserve marks the resource busy. Reserving a busy resource indicates a
// caller bug; it is logged and otherwise ignored.
func (rp *ResourcePool) Reserve(idx int) {
	if rp.resources[idx].busy {
		logrus.Warnf("resource %d reserved while busy", idx)
		return
	}
	rp.resources[idx].busy = true
}

// Release marks the resource free. Callers must release on every exit path,
// including abandoned transmissions.
func (rp *ResourcePool) Release(idx int) {
	rp.resources[idx].busy = false
}

// Bandwidth returns the capacity descriptor of the resource at idx.
func (rp *ResourcePool) Bandwidth(idx int) float64 {
	return rp.resources[idx].BandwidthHz
}

// Busy reports whether the resource at idx is currently reserved.
func (rp *ResourcePool) Busy(idx int) bool {
	return rp.resources[idx].busy
}

// Size returns the number of resources in the pool.
func (rp *ResourcePool) Size() int {
	return len(rp.resources)
}
