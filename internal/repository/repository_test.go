package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolioai/internal/db"
	"portfolioai/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &model.User{Email: "a@x.com", HashedPassword: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Create(ctx, &model.User{Email: "a@x.com", HashedPassword: "other"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPortfolioRepository_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	repo := NewPortfolioRepository(gormDB)

	alice := &model.User{Email: "alice@x.com", HashedPassword: "h"}
	bob := &model.User{Email: "bob@x.com", HashedPassword: "h"}
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	first := &model.Portfolio{OwnerID: alice.ID, FullName: "Alice A", Projects: model.Projects{{ProjectName: "p1"}}}
	second := &model.Portfolio{OwnerID: alice.ID, FullName: "Alice B", Projects: model.Projects{}}
	other := &model.Portfolio{OwnerID: bob.ID, FullName: "Bob", Projects: model.Projects{}}
	for _, p := range []*model.Portfolio{first, second, other} {
		require.NoError(t, repo.Create(ctx, p))
	}

	list, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.PortfolioSummary{
		{ID: first.ID, FullName: "Alice A"},
		{ID: second.ID, FullName: "Alice B"},
	}, list)

	got, err := repo.FindByIDAndOwner(ctx, first.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Projects, got.Projects)

	_, err = repo.FindByIDAndOwner(ctx, other.ID, alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	empty, err := repo.ListByOwner(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}
