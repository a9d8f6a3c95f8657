package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolioai/internal/model"
)

func TestNewSQLite_MigratesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	gormDB, err := Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, Migrate(gormDB))

	assert.True(t, gormDB.Migrator().HasTable(&model.User{}))
	assert.True(t, gormDB.Migrator().HasTable("portfolios"))

	user := &model.User{Email: "a@x.com", HashedPassword: "h"}
	require.NoError(t, gormDB.Create(user).Error)

	url := "https://example.com"
	p := &model.Portfolio{
		OwnerID:  user.ID,
		FullName: "Jane Doe",
		Projects: model.Projects{{ProjectName: "One", ProjectURL: &url, ProjectDescription: "d", Technologies: "Go"}},
	}
	require.NoError(t, gormDB.Create(p).Error)

	var loaded model.Portfolio
	require.NoError(t, gormDB.First(&loaded, p.ID).Error)
	assert.Equal(t, p.Projects, loaded.Projects)
	assert.Equal(t, user.ID, loaded.OwnerID)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("oracle", "dsn")
	assert.Error(t, err)
}

func TestGormConfig_QuietOnMisses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.db")
	gormDB, err := Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, Migrate(gormDB))

	var user model.User
	err = gormDB.Where("email = ?", "nobody@x.com").First(&user).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.True(t, gormConfig().TranslateError)
	assert.NotNil(t, gormConfig().Logger)
}
