package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"authfront/internal/repositories"
)

func TestInitMigratesLocalItems(t *testing.T) {
	db, err := Init(Config{Path: filepath.Join(t.TempDir(), "test.db"), LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo := repositories.NewLocalItemRepository(db)
	ctx := context.Background()

	item, err := repo.Get(ctx, "jwtToken")
	require.NoError(t, err)
	assert.Nil(t, item)

	require.NoError(t, repo.Set(ctx, "jwtToken", "first"))
	require.NoError(t, repo.Set(ctx, "jwtToken", "second"))

	item, err = repo.Get(ctx, "jwtToken")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "second", item.Value)

	var count int64
	require.NoError(t, db.Table("local_items").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, "jwtToken"))
	require.NoError(t, repo.Delete(ctx, "jwtToken"))
	item, err = repo.Get(ctx, "jwtToken")
	require.NoError(t, err)
	assert.Nil(t, item)
}
