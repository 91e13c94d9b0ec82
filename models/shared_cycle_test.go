package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSharedCycleAccessible(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	active := SharedCycle{IsActive: true}
	assert.True(t, active.Accessible(now))

	revoked := SharedCycle{IsActive: false}
	assert.False(t, revoked.Accessible(now))

	expiring := SharedCycle{IsActive: true, ExpiresAt: &future}
	assert.True(t, expiring.Accessible(now))

	expired := SharedCycle{IsActive: true, ExpiresAt: &past}
	assert.False(t, expired.Accessible(now))
}
