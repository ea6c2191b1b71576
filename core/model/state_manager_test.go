package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()
	assert.False(t, s.IsFitted())

	err := s.RequireFitted("GDRegression", "Predict")
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "GDRegression", nf.ModelName)
	assert.Equal(t, "Predict", nf.Method)

	s.MarkFitted(1, 20, 1500)
	assert.True(t, s.IsFitted())
	assert.NoError(t, s.RequireFitted("GDRegression", "Predict"))

	nFeatures, nSamples := s.GetDimensions()
	assert.Equal(t, 1, nFeatures)
	assert.Equal(t, 20, nSamples)
	assert.Equal(t, 1500, s.Iterations())

	s.Reset()
	assert.False(t, s.IsFitted())
	assert.Equal(t, 0, s.Iterations())
}

func TestStateManagerConcurrentReads(t *testing.T) {
	s := NewStateManager()
	s.MarkFitted(1, 10, 3)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, s.IsFitted())
			assert.Equal(t, 3, s.Iterations())
		}()
	}
	wg.Wait()
}
