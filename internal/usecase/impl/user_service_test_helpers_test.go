package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(signalMissingDelete bool) *config.Config {
	return &config.Config{
		Auth:  &config.AuthConfig{BcryptCost: 12},
		Users: &config.UsersConfig{SignalMissingDelete: signalMissingDelete},
	}
}

// fakeUserRepo is an in-memory UserRepository used to drive the service
// without a database. IDs are assigned sequentially on create.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]entity.User

	createErr error
	updateErr error
	findErr   error
	deleteErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}

	r.users[user.ID] = *user

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	for _, user := range r.users {
		if user.Email == email {
			found := user

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		found := user
		users = append(users, &found)
	}

	return users, nil
}

func (r *fakeUserRepo) DeleteByID(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteErr != nil {
		return false, r.deleteErr
	}

	_, ok := r.users[id]
	delete(r.users, id)

	return ok, nil
}

// stored returns a copy of the persisted record, bypassing the repository
// interface, for post-condition assertions.
func (r *fakeUserRepo) stored(id uint64) (entity.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]

	return user, ok
}

// fakeHasher is a deterministic PasswordHasher stand-in. Digests are the
// plaintext with a marker prefix, which keeps assertions readable.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "digest:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "digest:"+password
}
