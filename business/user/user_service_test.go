package user

import (
	"context"
	"testing"

	"toolsPlaza/domain"
	"toolsPlaza/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory fake keyed by email, reverse insertion order preserved
type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Upsert(_ context.Context, email string, patch domain.User) (domain.UpsertResult, error) {
	if existing, ok := f.users[email]; ok {
		if patch.Name != "" {
			existing.Name = patch.Name
		}
		return domain.UpsertResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	f.users[email] = &domain.User{Email: email, Name: patch.Name, Role: domain.RoleUser}
	return domain.UpsertResult{UpsertedID: email}, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, email, role string) (int64, error) {
	user, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	user.Role = role
	return 1, nil
}

type fakeUserInfoRepo struct {
	infos map[string]*domain.UserInfo
}

func newFakeUserInfoRepo() *fakeUserInfoRepo {
	return &fakeUserInfoRepo{infos: make(map[string]*domain.UserInfo)}
}

func (f *fakeUserInfoRepo) Upsert(_ context.Context, email string, info domain.UserInfo) (domain.UpsertResult, error) {
	info.Email = email
	_, existed := f.infos[email]
	f.infos[email] = &info
	if existed {
		return domain.UpsertResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return domain.UpsertResult{UpsertedID: email}, nil
}

func (f *fakeUserInfoRepo) FindByEmail(_ context.Context, email string) (*domain.UserInfo, error) {
	info, ok := f.infos[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return info, nil
}

func TestSyncUser_IssuesTokenAndUpserts(t *testing.T) {
	utils.InitJWT("test-secret")
	repo := newFakeUserRepo()
	svc := NewUserService(repo, newFakeUserInfoRepo())

	result, token, err := svc.SyncUser(context.Background(), "a@x.com", domain.User{Name: "Alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.UpsertedID)
	require.NotEmpty(t, token)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestSyncUser_Idempotent(t *testing.T) {
	utils.InitJWT("test-secret")
	repo := newFakeUserRepo()
	svc := NewUserService(repo, newFakeUserInfoRepo())

	_, _, err := svc.SyncUser(context.Background(), "a@x.com", domain.User{Name: "Alice"})
	require.NoError(t, err)
	_, _, err = svc.SyncUser(context.Background(), "a@x.com", domain.User{Name: "Alice"})
	require.NoError(t, err)

	assert.Len(t, repo.users, 1)
	assert.Equal(t, domain.RoleUser, repo.users["a@x.com"].Role)
}

func TestIsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin@x.com"] = &domain.User{Email: "admin@x.com", Role: domain.RoleAdmin}
	repo.users["user@x.com"] = &domain.User{Email: "user@x.com", Role: domain.RoleUser}
	svc := NewUserService(repo, newFakeUserInfoRepo())

	isAdmin, err := svc.IsAdmin(context.Background(), "admin@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "user@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestPromoteAdmin_RequesterMustBeAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin@x.com"] = &domain.User{Email: "admin@x.com", Role: domain.RoleAdmin}
	repo.users["user@x.com"] = &domain.User{Email: "user@x.com", Role: domain.RoleUser}
	repo.users["target@x.com"] = &domain.User{Email: "target@x.com", Role: domain.RoleUser}
	svc := NewUserService(repo, newFakeUserInfoRepo())

	// non-admin requester: forbidden, target unchanged
	_, err := svc.PromoteAdmin(context.Background(), "user@x.com", "target@x.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, domain.RoleUser, repo.users["target@x.com"].Role)

	// unknown requester: forbidden
	_, err = svc.PromoteAdmin(context.Background(), "ghost@x.com", "target@x.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// admin requester succeeds
	matched, err := svc.PromoteAdmin(context.Background(), "admin@x.com", "target@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	assert.Equal(t, domain.RoleAdmin, repo.users["target@x.com"].Role)
}

func TestPromoteAdmin_MissingTarget(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin@x.com"] = &domain.User{Email: "admin@x.com", Role: domain.RoleAdmin}
	svc := NewUserService(repo, newFakeUserInfoRepo())

	_, err := svc.PromoteAdmin(context.Background(), "admin@x.com", "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserInfo_UpsertWholesale(t *testing.T) {
	infoRepo := newFakeUserInfoRepo()
	svc := NewUserService(newFakeUserRepo(), infoRepo)

	_, err := svc.UpsertUserInfo(context.Background(), "a@x.com", domain.UserInfo{Location: "Dhaka"})
	require.NoError(t, err)

	result, err := svc.UpsertUserInfo(context.Background(), "a@x.com", domain.UserInfo{Location: "Sylhet"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)

	info, err := svc.GetUserInfo(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Sylhet", info.Location)

	_, err = svc.GetUserInfo(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
