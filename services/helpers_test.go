package services

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"paju/errors"
	"paju/repository"
	"paju/services/notification"
	"paju/storage"
)

// recorder ghi lại các event đã phát
type recorder struct {
	mu     sync.Mutex
	events []notification.Event
}

func (r *recorder) SendMessage(string) error { return nil }

func (r *recorder) Publish(e notification.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) last() notification.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return notification.Event{}
	}
	return r.events[len(r.events)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type fakeImages struct {
	deleted []string
}

func (f *fakeImages) Upload(_ context.Context, filename string, data []byte) (*storage.Result, error) {
	return &storage.Result{URL: "/uploads/" + filename, Filename: filename, Size: int64(len(data))}, nil
}

func (f *fakeImages) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeImages) Name() string { return "fake" }

type testEnv struct {
	deps   Deps
	events *recorder
	redis  *miniredis.Miniredis
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	events := &recorder{}
	return &testEnv{
		deps: Deps{
			Store:    repository.NewMemoryStore(),
			Cache:    NewRedisCache(rdb),
			Notifier: events,
		},
		events: events,
		redis:  mr,
	}
}

func codeOf(err error) errors.ErrorCode {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ""
}

func ptr[T any](v T) *T { return &v }
