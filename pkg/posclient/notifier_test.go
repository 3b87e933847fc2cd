package posclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_ExpiresAfterTTL(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	n := NewNotifier().WithClock(func() time.Time { return now })

	n.Success("Customer added successfully")
	now = now.Add(time.Second)
	n.Warning("Check the form")

	active := n.Active()
	require.Len(t, active, 2)
	assert.Equal(t, ToastSuccess, active[0].Kind)
	assert.Equal(t, ToastWarning, active[1].Kind)

	now = now.Add(2 * time.Second)
	active = n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Check the form", active[0].Message)

	now = now.Add(time.Second)
	assert.Empty(t, n.Active())
}

func TestNotifier_Dismiss(t *testing.T) {
	n := NewNotifier()
	first := n.Error("Failed to save customer")
	n.Success("Customer updated successfully")

	n.Dismiss(first.ID)

	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Customer updated successfully", active[0].Message)
}
