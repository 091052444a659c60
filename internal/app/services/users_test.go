package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-up/internal/app/core"
	"order-up/internal/domain/models"
)

func TestRegisterRoleDerivation(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"admin", models.RoleAdmin},
		{"Admin", models.RoleAdmin},
		{"ADMIN", models.RoleAdmin},
		{"aDmIn", models.RoleAdmin},
		{"bob", models.RoleUser},
		{"administrator", models.RoleUser},
		{"admin2", models.RoleUser},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			svc := NewUsersService(newMemStore(), testLogger())
			user, err := svc.Register(context.Background(), tt.username, "pw")
			require.NoError(t, err)
			assert.Equal(t, tt.want, user.Role)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, "pw", user.Password)
			assert.NotZero(t, user.ID)
		})
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewUsersService(newMemStore(), testLogger())

	tests := []struct{ username, password string }{
		{"", "pw"},
		{"bob", ""},
		{"", ""},
	}
	for _, tt := range tests {
		_, err := svc.Register(context.Background(), tt.username, tt.password)
		assert.ErrorIs(t, err, core.ErrValidation)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	st := newMemStore()
	svc := NewUsersService(st, testLogger())

	_, err := svc.Register(context.Background(), "Alice", "pw1")
	require.NoError(t, err)

	// Any case combination of a taken username conflicts.
	for _, dup := range []string{"Alice", "alice", "ALICE", "aLiCe"} {
		_, err := svc.Register(context.Background(), dup, "pw2")
		assert.ErrorIs(t, err, core.ErrConflict, "username %q", dup)
	}
	assert.Equal(t, 1, st.count(core.CollectionUsers))
}

func TestRegisterConcurrentNoLostUpdate(t *testing.T) {
	st := newMemStore()
	svc := NewUsersService(st, testLogger())

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Register(context.Background(), fmt.Sprintf("user%02d", i), "pw")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, st.count(core.CollectionUsers))

	var users []models.User
	require.NoError(t, st.Load(context.Background(), core.CollectionUsers, &users))
	seen := map[int64]bool{}
	for _, u := range users {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewUsersService(newMemStore(), testLogger())
	created, err := svc.Register(context.Background(), "bob", "secret")
	require.NoError(t, err)

	t.Run("matching credentials return the stored record", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "bob", "secret")
		require.NoError(t, err)
		assert.Equal(t, created, user)
	})

	t.Run("username match is case-insensitive", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "BOB", "secret")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("password match is exact", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "bob", "SECRET")
		assert.ErrorIs(t, err, core.ErrAuth)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "eve", "secret")
		assert.ErrorIs(t, err, core.ErrAuth)
	})
}

func TestUsersStoreFailurePropagates(t *testing.T) {
	st := newMemStore()
	st.failLoad = true
	svc := NewUsersService(st, testLogger())

	_, err := svc.Register(context.Background(), "bob", "pw")
	assert.ErrorIs(t, err, core.ErrStoreFailure)

	_, err = svc.Authenticate(context.Background(), "bob", "pw")
	assert.ErrorIs(t, err, core.ErrStoreFailure)
}
