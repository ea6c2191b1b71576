// Package model provides estimator interfaces and fitted-state tracking.
package model

import (
	"sync"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// StateManager manages the fitted state of a model in a thread-safe manner.
// Estimators embed it by composition and consult it before Predict and Score.
type StateManager struct {
	mu     sync.RWMutex
	fitted bool

	nFeatures int
	nSamples  int
	nIter     int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// MarkFitted records a successful fit together with the data shape and the
// number of optimizer iterations it took.
func (s *StateManager) MarkFitted(nFeatures, nSamples, nIter int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
	s.nFeatures = nFeatures
	s.nSamples = nSamples
	s.nIter = nIter
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
	s.nIter = 0
}

// GetDimensions returns the number of features and samples seen during fitting.
func (s *StateManager) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

// Iterations returns the iteration count of the last fit.
func (s *StateManager) Iterations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nIter
}

// RequireFitted returns a NotFittedError naming the model and method if
// the model has not been fitted.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}
