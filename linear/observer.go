package linear

import (
	"fmt"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// Snapshot is the state reported to an Observer. Params are the values the
// cost was computed with, before that iteration's update.
type Snapshot struct {
	Iteration int
	Cost      float64
	Params    Params
}

// Observer receives periodic snapshots during Fit. It cannot influence the
// fit; a panicking observer is recovered and logged.
type Observer interface {
	Observe(s Snapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s Snapshot)

// Observe calls f(s).
func (f ObserverFunc) Observe(s Snapshot) {
	f(s)
}

// Observers fans a snapshot out to several observers in order. A panicking
// observer does not stop the ones after it; the first panic is re-raised once
// every observer has seen the snapshot.
type Observers []Observer

func (o Observers) Observe(s Snapshot) {
	var first error
	for i, obs := range o {
		if err := observeSafely(i, obs, s); err != nil && first == nil {
			first = err
		}
	}
	if first != nil {
		panic(first)
	}
}

func observeSafely(i int, obs Observer, s Snapshot) error {
	return errors.SafeExecute(fmt.Sprintf("observer[%d]", i), func() error {
		obs.Observe(s)
		return nil
	})
}

// CostHistory returns an observer that appends every reported cost to dst.
func CostHistory(dst *[]float64) Observer {
	return ObserverFunc(func(s Snapshot) {
		*dst = append(*dst, s.Cost)
	})
}
