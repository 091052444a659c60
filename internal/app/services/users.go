package services

import (
	"context"
	"strings"
	"sync"

	"order-up/internal/app/core"
	"order-up/internal/domain/models"
	"order-up/pkg/logger"
)

// UsersService owns the users collection. The mutex spans every
// load-mutate-save sequence, so two concurrent registrations cannot read the
// same state and overwrite each other's write.
type UsersService struct {
	mu    sync.Mutex
	store core.Store
	ids   idGenerator
	mylog logger.Logger
}

func NewUsersService(store core.Store, mylog logger.Logger) *UsersService {
	return &UsersService{store: store, mylog: mylog}
}

// Register creates a user. Usernames are unique under case-insensitive
// comparison; the stored record, plaintext password included, is returned.
func (s *UsersService) Register(ctx context.Context, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, core.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.store.Load(ctx, core.CollectionUsers, &users); err != nil {
		s.mylog.Action("users_load_failed").Error("Failed to load users", err)
		return models.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return models.User{}, core.ErrConflict
		}
	}

	user := models.User{
		ID:       s.ids.next(),
		Username: username,
		Password: password,
		Role:     models.RoleFor(username),
	}
	users = append(users, user)

	if err := s.store.Save(ctx, core.CollectionUsers, users); err != nil {
		s.mylog.Action("users_save_failed").Error("Failed to save users", err)
		return models.User{}, err
	}

	s.mylog.Action("user_registered").Info("User registered",
		"user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, nil
}

// Authenticate returns the record matching the username (case-insensitive)
// and the exact password.
func (s *UsersService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.store.Load(ctx, core.CollectionUsers, &users); err != nil {
		s.mylog.Action("users_load_failed").Error("Failed to load users", err)
		return models.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, username) && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, core.ErrAuth
}
