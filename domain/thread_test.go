package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThreadFromPayload(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		thread, err := NewThreadFromPayload(Payload{"title": "sebuah thread", "body": "sebuah body"})
		require.NoError(t, err)
		assert.Equal(t, "sebuah thread", thread.Title)
		assert.Equal(t, "sebuah body", thread.Body)
	})

	t.Run("missing property", func(t *testing.T) {
		for _, payload := range []Payload{
			{"title": "sebuah thread"},
			{"body": "sebuah body"},
			{"title": "", "body": "sebuah body"},
			{"title": nil, "body": "sebuah body"},
			{},
		} {
			_, err := NewThreadFromPayload(payload)
			assert.Equal(t, ValidationError{EntityNewThread, MissingProperty}, err)
		}
	})

	t.Run("wrong data type", func(t *testing.T) {
		_, err := NewThreadFromPayload(Payload{"title": float64(123), "body": "sebuah body"})
		assert.Equal(t, ValidationError{EntityNewThread, WrongDataType}, err)
	})

	t.Run("missing wins over wrong type", func(t *testing.T) {
		_, err := NewThreadFromPayload(Payload{"title": float64(123)})
		assert.Equal(t, ValidationError{EntityNewThread, MissingProperty}, err)
	})
}

func TestNewAddedThread(t *testing.T) {
	added, err := NewAddedThread("thread-123", "sebuah thread", "user-123")
	require.NoError(t, err)
	assert.Equal(t, AddedThread{ID: "thread-123", Title: "sebuah thread", Owner: "user-123"}, added)

	_, err = NewAddedThread("thread-123", "", "user-123")
	assert.Equal(t, ValidationError{EntityAddedThread, MissingProperty}, err)
}

func TestThreadDetailFormat(t *testing.T) {
	created := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	record := ThreadRecord{
		ID:        "thread-123",
		Title:     "sebuah thread",
		Body:      "sebuah body",
		Username:  "dicoding",
		CreatedAt: created,
		UpdatedAt: created,
	}

	t.Run("empty comment list stays serializable", func(t *testing.T) {
		detail, err := NewThreadDetail(record, []FormattedComment{})
		require.NoError(t, err)

		formatted := detail.Format()
		assert.Equal(t, "thread-123", formatted.ID)
		assert.Equal(t, "dicoding", formatted.Username)
		assert.Equal(t, created.Format(time.RFC3339), formatted.Date)
		assert.NotNil(t, formatted.Comments)
		assert.Empty(t, formatted.Comments)
	})

	t.Run("nil comments rejected", func(t *testing.T) {
		_, err := NewThreadDetail(record, nil)
		assert.Equal(t, ValidationError{EntityThreadDetail, MissingProperty}, err)
	})

	t.Run("incomplete record rejected", func(t *testing.T) {
		broken := record
		broken.Username = ""
		_, err := NewThreadDetail(broken, []FormattedComment{})
		assert.Equal(t, ValidationError{EntityThreadDetail, MissingProperty}, err)
	})
}
