package service_test

import (
	"context"
	"sync"
	"time"

	"field-service-backend/internal/mocks"
	"field-service-backend/internal/repository"
	"field-service-backend/internal/service"

	"go.uber.org/mock/gomock"
)

// mockStore bundles one mock per repository behind a mocked unit of work
type mockStore struct {
	uow      *mocks.MockUnitOfWorkInterface
	users    *mocks.MockUserRepositoryInterface
	props    *mocks.MockPropertyRepositoryInterface
	avail    *mocks.MockAvailabilityRepositoryInterface
	jobs     *mocks.MockJobRepositoryInterface
	logs     *mocks.MockAssignmentLogRepositoryInterface
	repos    *repository.Repositories
	commits  int
	rollback int
}

func newMockStore(ctrl *gomock.Controller) *mockStore {
	s := &mockStore{
		uow:   mocks.NewMockUnitOfWorkInterface(ctrl),
		users: mocks.NewMockUserRepositoryInterface(ctrl),
		props: mocks.NewMockPropertyRepositoryInterface(ctrl),
		avail: mocks.NewMockAvailabilityRepositoryInterface(ctrl),
		jobs:  mocks.NewMockJobRepositoryInterface(ctrl),
		logs:  mocks.NewMockAssignmentLogRepositoryInterface(ctrl),
	}
	s.repos = &repository.Repositories{
		Users:          s.users,
		Properties:     s.props,
		Availability:   s.avail,
		Jobs:           s.jobs,
		AssignmentLogs: s.logs,
	}
	s.uow.EXPECT().Repositories(gomock.Any()).Return(s.repos).AnyTimes()
	s.uow.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(*repository.Repositories) error) error {
			if err := fn(s.repos); err != nil {
				s.rollback++
				return err
			}
			s.commits++
			return nil
		}).AnyTimes()
	return s
}

// recordingNotifier captures notifications and can be told to fail
type recordingNotifier struct {
	mu   sync.Mutex
	sent []service.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, note service.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, note)
	return n.err
}

func (n *recordingNotifier) notifications() []service.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]service.Notification, len(n.sent))
	copy(out, n.sent)
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
