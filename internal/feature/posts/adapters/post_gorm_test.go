package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Post{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedPost(t *testing.T, repo *postGorm, authorID uint, title, content string, hidden bool) *entity.Post {
	t.Helper()

	p := &entity.Post{Title: title, Content: content, AuthorID: authorID, IsHidden: hidden}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPostGorm_Create(t *testing.T) {
	t.Run("successful post creation", func(t *testing.T) {
		repo := NewPostGorm(setupTestDB(t))

		p := &entity.Post{Title: "T", Content: "C", AuthorID: 1}
		err := repo.Create(context.Background(), p)

		assert.NoError(t, err)
		assert.NotZero(t, p.ID)
	})

	t.Run("same title by the same author rejected", func(t *testing.T) {
		repo := NewPostGorm(setupTestDB(t))
		seedPost(t, repo, 1, "T", "C1", false)

		err := repo.Create(context.Background(), &entity.Post{Title: "T", Content: "C2", AuthorID: 1})

		assert.ErrorIs(t, err, usecase.ErrDuplicatePost)
	})

	t.Run("same title by different authors allowed", func(t *testing.T) {
		repo := NewPostGorm(setupTestDB(t))
		seedPost(t, repo, 1, "T", "C1", false)

		err := repo.Create(context.Background(), &entity.Post{Title: "T", Content: "C2", AuthorID: 2})

		assert.NoError(t, err)
	})

	t.Run("same content by the same author rejected", func(t *testing.T) {
		repo := NewPostGorm(setupTestDB(t))
		seedPost(t, repo, 1, "T1", "C", false)

		err := repo.Create(context.Background(), &entity.Post{Title: "T2", Content: "C", AuthorID: 1})

		assert.ErrorIs(t, err, usecase.ErrDuplicatePost)
	})
}

func TestPostGorm_FindByIDAndAuthor(t *testing.T) {
	repo := NewPostGorm(setupTestDB(t))
	p := seedPost(t, repo, 1, "T", "C", false)

	t.Run("found for the author", func(t *testing.T) {
		got, err := repo.FindByIDAndAuthor(context.Background(), p.ID, 1)

		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	})

	t.Run("not found for a different author", func(t *testing.T) {
		_, err := repo.FindByIDAndAuthor(context.Background(), p.ID, 2)

		assert.ErrorIs(t, err, usecase.ErrPostNotFound)
	})
}

func TestPostGorm_FindSimilar(t *testing.T) {
	repo := NewPostGorm(setupTestDB(t))
	p := seedPost(t, repo, 1, "T", "C", false)
	seedPost(t, repo, 2, "T", "other content", false)

	t.Run("matches title within the author", func(t *testing.T) {
		got, err := repo.FindSimilar(context.Background(), 1, "T", "fresh", 0)

		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	})

	t.Run("matches content within the author", func(t *testing.T) {
		got, err := repo.FindSimilar(context.Background(), 1, "fresh", "C", 0)

		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	})

	t.Run("excludes the given post id", func(t *testing.T) {
		_, err := repo.FindSimilar(context.Background(), 1, "T", "C", p.ID)

		assert.ErrorIs(t, err, usecase.ErrPostNotFound)
	})

	t.Run("other authors' posts do not count", func(t *testing.T) {
		_, err := repo.FindSimilar(context.Background(), 3, "T", "C", 0)

		assert.ErrorIs(t, err, usecase.ErrPostNotFound)
	})
}

func TestPostGorm_ListVisible(t *testing.T) {
	repo := NewPostGorm(setupTestDB(t))
	public := seedPost(t, repo, 1, "public", "p", false)
	ownHidden := seedPost(t, repo, 1, "own hidden", "oh", true)
	seedPost(t, repo, 2, "foreign hidden", "fh", true)

	posts, err := repo.ListVisible(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	ids := []uint{posts[0].ID, posts[1].ID}
	assert.Contains(t, ids, public.ID)
	assert.Contains(t, ids, ownHidden.ID)
}

func TestPostGorm_UpdateAndDelete(t *testing.T) {
	repo := NewPostGorm(setupTestDB(t))
	p := seedPost(t, repo, 1, "T", "C", false)

	p.Title = "T2"
	p.IsHidden = true
	require.NoError(t, repo.Update(context.Background(), p))

	got, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.True(t, got.IsHidden)

	require.NoError(t, repo.Delete(context.Background(), p.ID))

	_, err = repo.FindByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, usecase.ErrPostNotFound)
}
