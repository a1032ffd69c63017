package repository

import (
	"testing"
	"time"

	"github.com/karyakir/karyakir_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func createWork(t *testing.T, repo WorkRepository, title string, category models.Category, createdAt time.Time) *models.Work {
	t.Helper()
	work := &models.Work{
		Title:      title,
		Content:    "isi " + title,
		Category:   category,
		AuthorName: "Rahma",
		CreatedAt:  createdAt,
	}
	require.NoError(t, repo.Create(work))
	return work
}

func TestWorkRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkRepository(db)

	work := createWork(t, repo, "Kecambah", models.CategoryEksperimen, time.Now())

	found, err := repo.FindByID(work.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kecambah", found.Title)
	assert.Nil(t, found.ImageURL)
	assert.Zero(t, found.LikesCount)

	_, err = repo.FindByID(work.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkRepository_ListAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkRepository(db)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	createWork(t, repo, "lama", models.CategoryFakta, base)
	createWork(t, repo, "baru", models.CategoryEksperimen, base.Add(48*time.Hour))
	createWork(t, repo, "tengah", models.CategoryInfoKIR, base.Add(24*time.Hour))

	works, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, works, 3)

	assert.Equal(t, []string{"baru", "tengah", "lama"}, []string{works[0].Title, works[1].Title, works[2].Title})
	for i := 1; i < len(works); i++ {
		assert.False(t, works[i].CreatedAt.After(works[i-1].CreatedAt))
	}
}

func TestWorkRepository_ListAllEmpty(t *testing.T) {
	db := newTestDB(t)

	works, err := NewWorkRepository(db).ListAll()
	require.NoError(t, err)
	assert.NotNil(t, works)
	assert.Empty(t, works)
}

func TestWorkRepository_AdjustCounters(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkRepository(db)
	work := createWork(t, repo, "Kecambah", models.CategoryEksperimen, time.Now())

	require.NoError(t, repo.AdjustLikes(work.ID, 1))
	require.NoError(t, repo.AdjustLikes(work.ID, 1))
	require.NoError(t, repo.AdjustComments(work.ID, 1))

	found, err := repo.FindByID(work.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, found.LikesCount)
	assert.EqualValues(t, 1, found.CommentsCount)

	// 0未満にはならない
	require.NoError(t, repo.AdjustLikes(work.ID, -1))
	require.NoError(t, repo.AdjustLikes(work.ID, -1))
	require.NoError(t, repo.AdjustLikes(work.ID, -1))

	found, err = repo.FindByID(work.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, found.LikesCount)
}

func TestWorkRepository_Recount(t *testing.T) {
	db := newTestDB(t)
	workRepo := NewWorkRepository(db)
	likeRepo := NewLikeRepository(db)
	commentRepo := NewCommentRepository(db)

	a := createWork(t, workRepo, "a", models.CategoryEksperimen, time.Now())
	b := createWork(t, workRepo, "b", models.CategoryFakta, time.Now())

	require.NoError(t, likeRepo.Create(&models.Like{WorkID: a.ID, UserIP: "user_1"}))
	require.NoError(t, likeRepo.Create(&models.Like{WorkID: a.ID, UserIP: "user_2"}))
	require.NoError(t, commentRepo.Create(&models.Comment{WorkID: b.ID, AuthorName: "Andi", Content: "bagus"}))

	// ずれたカウンタ
	require.NoError(t, workRepo.AdjustLikes(b.ID, 5))

	updated, err := workRepo.Recount()
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	foundA, err := workRepo.FindByID(a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, foundA.LikesCount)
	assert.EqualValues(t, 0, foundA.CommentsCount)

	foundB, err := workRepo.FindByID(b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, foundB.LikesCount)
	assert.EqualValues(t, 1, foundB.CommentsCount)
}

func TestLikeRepository(t *testing.T) {
	db := newTestDB(t)
	work := createWork(t, NewWorkRepository(db), "a", models.CategoryEksperimen, time.Now())
	repo := NewLikeRepository(db)

	like, err := repo.Find(work.ID, "user_1")
	require.NoError(t, err)
	assert.Nil(t, like)

	require.NoError(t, repo.Create(&models.Like{WorkID: work.ID, UserIP: "user_1"}))

	like, err = repo.Find(work.ID, "user_1")
	require.NoError(t, err)
	require.NotNil(t, like)
	assert.Equal(t, "user_1", like.UserIP)

	deleted, err := repo.Delete(work.ID, "user_1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.Delete(work.ID, "user_1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}

func TestCommentRepository_ListByWorkNewestFirst(t *testing.T) {
	db := newTestDB(t)
	workRepo := NewWorkRepository(db)
	a := createWork(t, workRepo, "a", models.CategoryEksperimen, time.Now())
	b := createWork(t, workRepo, "b", models.CategoryEksperimen, time.Now())
	repo := NewCommentRepository(db)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&models.Comment{WorkID: a.ID, AuthorName: "Andi", Content: "pertama", CreatedAt: base}))
	require.NoError(t, repo.Create(&models.Comment{WorkID: a.ID, AuthorName: "Nadia", Content: "kedua", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(&models.Comment{WorkID: b.ID, AuthorName: "Fajar", Content: "lain", CreatedAt: base}))

	comments, err := repo.ListByWork(a.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "kedua", comments[0].Content)
	assert.Equal(t, "pertama", comments[1].Content)

	others, err := repo.ListByWork(b.ID)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "lain", others[0].Content)

	none, err := repo.ListByWork(999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
