package services

import (
	"testing"
	"time"

	"github.com/karyakir/karyakir_backend/internal/models"
	"github.com/karyakir/karyakir_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateIncrementsAndHeadsList(t *testing.T) {
	env := newTestEnv(t)
	work := env.createWork(t, "a", models.CategoryEksperimen)

	older := &models.Comment{WorkID: work.ID, AuthorName: "Andi", Content: "lama", CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, env.commentRepo.Create(older))
	require.NoError(t, env.workRepo.AdjustComments(work.ID, 1))

	result, err := env.comments.Create(work.ID, " Nadia ", " keren sekali ")
	require.NoError(t, err)
	assert.Equal(t, "Nadia", result.Comment.AuthorName)
	assert.Equal(t, "keren sekali", result.Comment.Content)
	assert.EqualValues(t, 2, result.CommentsCount)

	comments, err := env.comments.ListByWork(work.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, result.Comment.ID, comments[0].ID)
}

func TestCommentService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	work := env.createWork(t, "a", models.CategoryEksperimen)

	for _, c := range []struct{ name, content string }{
		{"", "isi"},
		{"Andi", "   "},
	} {
		_, err := env.comments.Create(work.ID, c.name, c.content)
		require.ErrorIs(t, err, ErrValidation)
		assert.EqualError(t, err, "Nama dan komentar tidak boleh kosong")
	}

	stored, err := env.works.GetByID(work.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.CommentsCount)
}

func TestCommentService_UnknownWork(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.comments.Create(42, "Andi", "isi")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = env.comments.ListByWork(42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
