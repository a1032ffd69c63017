package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/karyakir/karyakir_backend/internal/config"
	"github.com/karyakir/karyakir_backend/internal/models"
	"github.com/karyakir/karyakir_backend/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

	require.NoError(t, config.AutoMigrate(db))
	return db
}

// fakeStorage アップロード内容をメモリに保持する
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	failOn  string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStorage) Upload(ctx context.Context, objectName string, r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if s.failOn != "" && string(data) == s.failOn {
		return "", errors.New("bucket unavailable")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = data
	s.types[objectName] = contentType
	return "https://cdn.test/works/" + objectName, nil
}

// fakePublisher 送信されたイベントを記録する
type fakePublisher struct {
	events []WorkCreatedEvent
	err    error
}

func (p *fakePublisher) PublishWorkCreated(ctx context.Context, event WorkCreatedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

type testEnv struct {
	db          *gorm.DB
	workRepo    repository.WorkRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	storage     *fakeStorage
	events      *fakePublisher
	works       WorkService
	likes       LikeService
	comments    CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	env := &testEnv{
		db:          db,
		workRepo:    repository.NewWorkRepository(db),
		likeRepo:    repository.NewLikeRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		storage:     newFakeStorage(),
		events:      &fakePublisher{},
	}
	log := zap.NewNop()
	env.works = NewWorkService(env.workRepo, env.commentRepo, env.storage, env.events, log)
	env.likes = NewLikeService(env.workRepo, env.likeRepo, log)
	env.comments = NewCommentService(env.commentRepo, env.workRepo, log)
	return env
}

func (e *testEnv) createWork(t *testing.T, title string, category models.Category) *models.Work {
	t.Helper()
	work, err := e.works.Create(context.Background(), CreateWorkInput{
		Title:      title,
		Content:    "isi " + title,
		Category:   category,
		AuthorName: "Rahma",
	})
	require.NoError(t, err)
	return work
}
