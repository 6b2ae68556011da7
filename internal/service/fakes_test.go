package service

import (
	"context"
	"time"

	"github.com/Jer-romano/messagely/internal/domain"
	"github.com/Jer-romano/messagely/internal/repository"
)

// In-memory repository fakes. They mirror the postgres repos' contract:
// nil result (not an error) for no-rows, repository.ErrDuplicateUsername on
// a username collision, read stamps written only once.

type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	u := *user
	f.users[user.Username] = &u
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.PublicProfile, error) {
	var out []domain.PublicProfile
	for _, u := range f.users {
		out = append(out, u.Profile())
	}
	return out, nil
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, username string, at time.Time) (bool, error) {
	u, ok := f.users[username]
	if !ok {
		return false, nil
	}
	u.LastLoginAt = at
	return true, nil
}

type fakeMessageRepo struct {
	users    *fakeUserRepo
	messages map[int64]*domain.Message
	nextID   int64
}

func newFakeMessageRepo(users *fakeUserRepo) *fakeMessageRepo {
	return &fakeMessageRepo{users: users, messages: make(map[int64]*domain.Message)}
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	f.nextID++
	msg.ID = f.nextID
	cp := *msg
	cp.FromUser, cp.ToUser = nil, nil
	f.messages[msg.ID] = &cp
	return nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id int64) (*domain.Message, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, nil
	}
	return f.joined(m), nil
}

func (f *fakeMessageRepo) MarkRead(_ context.Context, id int64, at time.Time) error {
	m, ok := f.messages[id]
	if !ok || m.ReadAt != nil {
		return nil
	}
	m.ReadAt = &at
	return nil
}

func (f *fakeMessageRepo) ListFrom(_ context.Context, username string) ([]domain.Message, error) {
	var out []domain.Message
	for id := int64(1); id <= f.nextID; id++ {
		if m, ok := f.messages[id]; ok && m.FromUsername == username {
			j := f.joined(m)
			j.FromUser = nil
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) ListTo(_ context.Context, username string) ([]domain.Message, error) {
	var out []domain.Message
	for id := int64(1); id <= f.nextID; id++ {
		if m, ok := f.messages[id]; ok && m.ToUsername == username {
			j := f.joined(m)
			j.ToUser = nil
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) joined(m *domain.Message) *domain.Message {
	cp := *m
	if u, ok := f.users.users[m.FromUsername]; ok {
		p := u.Profile()
		cp.FromUser = &p
	}
	if u, ok := f.users.users[m.ToUsername]; ok {
		p := u.Profile()
		cp.ToUser = &p
	}
	return &cp
}

func seedUser(repo *fakeUserRepo, username, hash string) *domain.User {
	now := time.Now()
	u := &domain.User{
		Username:     username,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		Phone:        "+1 555 0100",
		JoinAt:       now,
		LastLoginAt:  now,
	}
	repo.users[username] = u
	return u
}
