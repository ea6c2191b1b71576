package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeExecute(t *testing.T) {
	sentinel := New("observer failed")

	tests := []struct {
		name      string
		fn        func() error
		wantPanic bool
		wantValue any
		wantMsg   string
		wantErr   error
	}{
		{
			name: "no panic no error",
			fn:   func() error { return nil },
		},
		{
			name:    "returned error passes through",
			fn:      func() error { return sentinel },
			wantErr: sentinel,
		},
		{
			name:      "string panic",
			fn:        func() error { panic("observer exploded") },
			wantPanic: true,
			wantValue: "observer exploded",
			wantMsg:   "panic in observer: observer exploded",
		},
		{
			name: "runtime panic",
			fn: func() error {
				var costs []float64
				_ = costs[3]
				return nil
			},
			wantPanic: true,
			wantMsg:   "index out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute("observer", tt.fn)

			if !tt.wantPanic {
				if tt.wantErr == nil {
					assert.NoError(t, err)
				} else {
					assert.True(t, Is(err, tt.wantErr))
				}
				return
			}

			var pe *PanicError
			require.True(t, As(err, &pe))
			assert.Equal(t, "observer", pe.Operation)
			assert.NotEmpty(t, pe.StackTrace)
			assert.Contains(t, pe.Error(), tt.wantMsg)
			assert.Contains(t, pe.String(), "Stack trace:")
			if tt.wantValue != nil {
				assert.Equal(t, tt.wantValue, pe.PanicValue)
			}
		})
	}
}

func TestRecoverWrapsExistingError(t *testing.T) {
	fit := func() (err error) {
		defer Recover(&err, "fit")
		err = ErrEmptyData
		panic("cost overflow")
	}

	err := fit()
	require.Error(t, err)
	assert.True(t, Is(err, ErrEmptyData))
	assert.Contains(t, err.Error(), "panic in fit: cost overflow")

	var pe *PanicError
	assert.False(t, As(err, &pe))
}

func TestRecoverWithoutPanicKeepsResult(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err, "fit")
		return nil
	}
	assert.NoError(t, run())
}
