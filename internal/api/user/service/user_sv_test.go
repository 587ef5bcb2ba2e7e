package userService

import (
	"ReceiptTracker/internal/api/report"
	"ReceiptTracker/internal/api/user"
	userRepository "ReceiptTracker/internal/api/user/repository"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership/ownershiptest"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users   map[int64]entity.User
	nextID  int64
	deleted []int64
	err     error
}

func (f *fakeUsers) CreateUser(_ context.Context, u entity.User) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id int64) (entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return entity.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) UpdateUser(_ context.Context, u entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRepository struct {
	users     *fakeUsers
	ownership *ownershiptest.Checker
	commits   int
	rollbacks int
}

func (f *fakeRepository) NewClient(_ context.Context, _ bool) (userRepository.Client, error) {
	return userRepository.Client{
		User:      f.users,
		Ownership: f.ownership,
		Commit:    func() error { f.commits++; return nil },
		Rollback:  func() error { f.rollbacks++; return nil },
	}, nil
}

type recordingCache struct {
	prefixes []string
}

func (c *recordingCache) GetJSON(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (c *recordingCache) SetJSON(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (c *recordingCache) Incr(context.Context, string) (int64, error) {
	return 1, nil
}

func (c *recordingCache) Close() error {
	return nil
}

func (c *recordingCache) DeleteByPrefix(_ context.Context, prefix string) error {
	c.prefixes = append(c.prefixes, prefix)
	return nil
}

func newService(repo *fakeRepository, cache *recordingCache) IUserService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewUserService(log, repo, cache)
}

func TestCreateAndGetUser(t *testing.T) {
	repo := &fakeRepository{users: &fakeUsers{users: map[int64]entity.User{}}}
	svc := newService(repo, &recordingCache{})

	id, err := svc.CreateUser(context.Background(), user.UserRequest{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, user.UserResponse{Name: "Ann", Email: "ann@example.com"}, got)
}

func TestGetUserNotFound(t *testing.T) {
	repo := &fakeRepository{users: &fakeUsers{users: map[int64]entity.User{}}}
	svc := newService(repo, &recordingCache{})

	_, err := svc.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	repo := &fakeRepository{
		users:     &fakeUsers{users: map[int64]entity.User{1: {ID: 1, Name: "Ann", Email: "ann@example.com"}}},
		ownership: ownershiptest.Owned(1, 0),
	}
	svc := newService(repo, &recordingCache{})

	got, err := svc.UpdateUser(context.Background(), 1, user.UserRequest{Name: "Ann B", Email: "annb@example.com"})
	require.NoError(t, err)
	assert.Equal(t, user.UserResponse{Name: "Ann B", Email: "annb@example.com"}, got)
	assert.Equal(t, 1, repo.commits)
}

func TestUpdateUserMissing(t *testing.T) {
	repo := &fakeRepository{
		users:     &fakeUsers{users: map[int64]entity.User{}},
		ownership: ownershiptest.Missing(),
	}
	svc := newService(repo, &recordingCache{})

	_, err := svc.UpdateUser(context.Background(), 5, user.UserRequest{Name: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Zero(t, repo.commits)
	assert.Equal(t, 1, repo.rollbacks)
}

func TestDeleteUserInvalidatesReports(t *testing.T) {
	repo := &fakeRepository{users: &fakeUsers{users: map[int64]entity.User{}}}
	cache := &recordingCache{}
	svc := newService(repo, cache)

	require.NoError(t, svc.DeleteUser(context.Background(), 9))
	assert.Equal(t, []int64{9}, repo.users.deleted)
	assert.Equal(t, []string{report.UserCachePrefix(9)}, cache.prefixes)
}

func TestDeleteUserStoreFailure(t *testing.T) {
	dbErr := errors.New("db down")
	repo := &fakeRepository{users: &fakeUsers{users: map[int64]entity.User{}, err: dbErr}}
	cache := &recordingCache{}
	svc := newService(repo, cache)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 9), user.ErrDeleteUser)
	assert.Empty(t, cache.prefixes)
	assert.Zero(t, repo.commits)
}
