package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/syamsf/dicoding-forum-api/domain"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec("INSERT INTO `comments`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	comment := domain.NewComment{Content: "sebuah komentar"}
	added, err := repo.Create(context.Background(), "user-123", "thread-123", comment)
	require.NoError(t, err)
	assert.Equal(t, "sebuah komentar", added.Content)
	assert.Equal(t, "user-123", added.Owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_FetchByThreadID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	created := time.Date(2021, 8, 8, 14, 19, 9, 0, time.UTC)
	deleted := created.Add(time.Hour)
	mock.ExpectQuery("SELECT .* FROM `comments`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "content", "is_delete", "created_at", "updated_at"}).
			AddRow("comment-1", "johndoe", "sebuah komentar", nil, created, created).
			AddRow("comment-2", nil, "komentar lain", deleted, created, created))

	records, err := repo.FetchByThreadID(context.Background(), "thread-123")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "johndoe", records[0].Username)
	assert.False(t, records[0].Deleted.Deleted())

	assert.Equal(t, domain.DeletedUserMask, records[1].Username)
	assert.True(t, records[1].Deleted.Deleted())
	ts, ok := records[1].Deleted.Timestamp()
	assert.True(t, ok)
	assert.Equal(t, deleted, ts)
}

func TestCommentRepository_DeleteByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec("UPDATE `comments` SET `is_delete`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteByID(context.Background(), "comment-123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_CheckAvailability(t *testing.T) {
	threadID := "thread-123"
	cols := []string{"id", "is_delete", "thread_id"}

	t.Run("available", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT .* FROM `comments`").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("comment-123", nil, threadID))

		assert.NoError(t, repo.CheckAvailability(context.Background(), threadID, "comment-123"))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT .* FROM `comments`").
			WillReturnRows(sqlmock.NewRows(cols))

		assert.ErrorIs(t, repo.CheckAvailability(context.Background(), threadID, "comment-999"), domain.ErrNotFound)
	})

	t.Run("soft deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		now := time.Now()
		mock.ExpectQuery("SELECT .* FROM `comments`").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("comment-123", now, threadID))

		assert.ErrorIs(t, repo.CheckAvailability(context.Background(), threadID, "comment-123"), domain.ErrNotFound)
	})

	t.Run("different thread", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT .* FROM `comments`").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("comment-123", nil, "thread-other"))

		assert.ErrorIs(t, repo.CheckAvailability(context.Background(), threadID, "comment-123"), domain.ErrNotFound)
	})
}

func TestCommentRepository_VerifyOwnership(t *testing.T) {
	t.Run("owner matches", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT .* FROM `comments`").
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

		assert.NoError(t, repo.VerifyOwnership(context.Background(), "comment-123", "user-123"))
	})

	t.Run("different owner", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT .* FROM `comments`").
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

		assert.ErrorIs(t, repo.VerifyOwnership(context.Background(), "comment-123", "user-456"), domain.ErrForbidden)
	})

	t.Run("owner account removed", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT .* FROM `comments`").
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow(nil))

		assert.ErrorIs(t, repo.VerifyOwnership(context.Background(), "comment-123", "user-123"), domain.ErrForbidden)
	})
}
