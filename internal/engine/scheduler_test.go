package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/sells-group/learning-loop/internal/notify/mocks"
	storeMocks "github.com/sells-group/learning-loop/internal/store/mocks"
)

// newTestScheduler returns a scheduler over a fresh engine and mock store.
func newTestScheduler(t *testing.T) (*Scheduler, *storeMocks.MockStore) {
	t.Helper()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	sched, err := NewScheduler(eng, ms, 1*time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)
	return sched, ms
}

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t)
	assert.Len(t, sched.Entries(), 2)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_RunLocked_Success(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", sched.holder, jobLockTTL).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-1", "completed", "", 7).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", sched.holder).
		Return(nil).Once()

	called := false
	sched.runLocked("test-job", func(context.Context) (int, error) {
		called = true
		return 7, nil
	})

	assert.True(t, called)
}

func TestScheduler_RunLocked_Failure(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	jobErr := errors.New("something went wrong")

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "fail-job", sched.holder, jobLockTTL).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "fail-job").Return("run-2", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-2", "failed", jobErr.Error(), 0).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "fail-job", sched.holder).
		Return(nil).Once()

	sched.runLocked("fail-job", func(context.Context) (int, error) {
		return 0, jobErr
	})
}

func TestScheduler_RunLocked_LockHeldElsewhere(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "busy-job", sched.holder, jobLockTTL).
		Return(false, nil).Once()
	// No run row, no release: another replica owns this tick.

	ran := false
	sched.runLocked("busy-job", func(context.Context) (int, error) {
		ran = true
		return 0, nil
	})

	assert.False(t, ran)
}

func TestScheduler_RunLocked_RunRowFailureTolerated(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", sched.holder, jobLockTTL).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").
		Return("", errors.New("insert failed")).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", sched.holder).
		Return(nil).Once()
	// No CompleteJobRun without a run row; the job itself still executes.

	ran := false
	sched.runLocked("test-job", func(context.Context) (int, error) {
		ran = true
		return 1, nil
	})

	assert.True(t, ran)
}

func TestScheduler_RecoverStaleJobRuns(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	ms.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(3, nil).Once()

	sched.RecoverStaleJobRuns(context.Background())
}

func TestScheduler_RecoverStaleJobRuns_ErrorLoggedOnly(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	ms.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(0, errors.New("db down")).Once()

	sched.RecoverStaleJobRuns(context.Background())
}
