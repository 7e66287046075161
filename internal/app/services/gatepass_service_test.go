package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/gatepass"
)

// fakePassStore is an in-memory PassStore. Consumption uses the same
// compare-and-set discipline as the SQL implementation: the check and the
// flip happen under one lock.
type fakePassStore struct {
	mu   sync.Mutex
	apps map[int64]*models.LeaveApplication
}

func newFakePassStore() *fakePassStore {
	return &fakePassStore{apps: make(map[int64]*models.LeaveApplication)}
}

func (f *fakePassStore) GetByID(_ context.Context, id int64) (*models.LeaveApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrLeaveNotFound
	}
	cp := *app
	if app.ExitPass != nil {
		p := *app.ExitPass
		cp.ExitPass = &p
	}
	if app.EntryPass != nil {
		p := *app.EntryPass
		cp.EntryPass = &p
	}
	return &cp, nil
}

func (f *fakePassStore) ConsumePass(_ context.Context, id int64, purpose gatepass.Purpose, usedAt time.Time) (*time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	app, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrPassNotFound
	}
	pass := app.PassFor(purpose)
	if pass == nil {
		return nil, apperrors.ErrPassNotFound
	}
	if pass.Used {
		return pass.UsedAt, apperrors.ErrPassAlreadyUsed
	}
	pass.Used = true
	at := usedAt
	pass.UsedAt = &at
	return nil, nil
}

func approvedApp(t *testing.T, codec *gatepass.Codec, id, studentID int64, from, to time.Time) *models.LeaveApplication {
	t.Helper()
	exit, entry, err := codec.IssuePair(id, studentID, from, to)
	require.NoError(t, err)

	return &models.LeaveApplication{
		ID:        id,
		StudentID: studentID,
		LeaveType: models.LeaveHomeVisit,
		FromDate:  from,
		ToDate:    to,
		Status:    models.LeaveApproved,
		ExitPass: &models.GatePass{
			LeaveApplicationID: id, Purpose: gatepass.PurposeExit,
			Code: exit.Code, ValidFrom: exit.ValidFrom, ValidUntil: exit.ValidUntil,
		},
		EntryPass: &models.GatePass{
			LeaveApplicationID: id, Purpose: gatepass.PurposeEntry,
			Code: entry.Code, ValidFrom: entry.ValidFrom, ValidUntil: entry.ValidUntil,
		},
	}
}

func newVerifier(t *testing.T, now time.Time) (*GatePassService, *fakePassStore, *gatepass.Codec) {
	t.Helper()
	codec := gatepass.NewCodec("verifier-test-secret", "hostelmate.test/gate")
	store := newFakePassStore()
	svc := NewGatePassService(store, codec)
	svc.now = func() time.Time { return now }
	return svc, store, codec
}

func TestVerifyConsumesPass(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 5)
	now := from.Add(2 * time.Hour)

	svc, store, codec := newVerifier(t, now)
	app := approvedApp(t, codec, 42, 7, from, to)
	store.apps[42] = app

	result, err := svc.Verify(context.Background(), app.ExitPass.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.LeaveApplicationID)
	assert.Equal(t, int64(7), result.StudentID)
	assert.Equal(t, "EXIT", result.Purpose)
	assert.True(t, result.UsedAt.Equal(now))

	stored := store.apps[42].ExitPass
	assert.True(t, stored.Used)
	require.NotNil(t, stored.UsedAt)
	assert.True(t, stored.UsedAt.Equal(now))
}

func TestVerifyRejectsReplay(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := from.Add(time.Hour)

	svc, store, codec := newVerifier(t, now)
	app := approvedApp(t, codec, 1, 2, from, from.AddDate(0, 0, 2))
	store.apps[1] = app

	_, err := svc.Verify(context.Background(), app.ExitPass.Code)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), app.ExitPass.Code)
	require.ErrorIs(t, err, apperrors.ErrPassAlreadyUsed)

	// The original consumption timestamp is surfaced for audit
	details := apperrors.DetailsOf(err)
	require.NotNil(t, details)
	usedAt, ok := details["usedAt"].(time.Time)
	require.True(t, ok)
	assert.True(t, usedAt.Equal(now))
}

func TestVerifyConcurrentScansSingleWinner(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := from.Add(time.Hour)

	svc, store, codec := newVerifier(t, now)
	app := approvedApp(t, codec, 9, 4, from, from.AddDate(0, 0, 3))
	store.apps[9] = app

	const attempts = 16
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Verify(context.Background(), app.ExitPass.Code)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, replays int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, apperrors.ErrPassAlreadyUsed)
			replays++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, replays)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	svc, _, _ := newVerifier(t, now)

	_, err := svc.Verify(context.Background(), "garbage.token.value")
	assert.ErrorIs(t, err, apperrors.ErrPassTokenInvalid)
}

func TestVerifyRejectsNotYetValid(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := from.Add(-time.Second)

	svc, store, codec := newVerifier(t, now)
	app := approvedApp(t, codec, 3, 1, from, from.AddDate(0, 0, 2))
	store.apps[3] = app

	_, err := svc.Verify(context.Background(), app.ExitPass.Code)
	assert.ErrorIs(t, err, apperrors.ErrPassNotYetValid)

	// Pass must remain unconsumed
	assert.False(t, store.apps[3].ExitPass.Used)
}

func TestVerifyRejectsExpired(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := from.Add(gatepass.WindowDuration + time.Second)

	svc, store, codec := newVerifier(t, now)
	app := approvedApp(t, codec, 3, 1, from, from.AddDate(0, 0, 2))
	store.apps[3] = app

	_, err := svc.Verify(context.Background(), app.ExitPass.Code)
	assert.ErrorIs(t, err, apperrors.ErrPassExpired)
}

func TestVerifyWindowBoundaries(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Exactly at validFrom and exactly at validUntil both redeem
	for _, now := range []time.Time{from, from.Add(gatepass.WindowDuration)} {
		svc, store, codec := newVerifier(t, now)
		app := approvedApp(t, codec, 5, 2, from, from.AddDate(0, 0, 2))
		store.apps[5] = app

		_, err := svc.Verify(context.Background(), app.ExitPass.Code)
		assert.NoError(t, err, "time %v should be inside the window", now)
	}
}

func TestVerifyRejectsUnknownApplication(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := from.Add(time.Hour)

	svc, _, codec := newVerifier(t, now)
	// Signed token for an application that does not exist in the store
	orphan := approvedApp(t, codec, 77, 1, from, from.AddDate(0, 0, 1))

	_, err := svc.Verify(context.Background(), orphan.ExitPass.Code)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotFound)
}

func TestVerifyRejectsUnapprovedApplication(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := from.Add(time.Hour)

	svc, store, codec := newVerifier(t, now)
	app := approvedApp(t, codec, 8, 2, from, from.AddDate(0, 0, 1))
	// Administrative reversal after issuance: signature still validates but the
	// live record must win.
	app.Status = models.LeaveRejected
	store.apps[8] = app

	_, err := svc.Verify(context.Background(), app.ExitPass.Code)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotApproved)
}

func TestVerifyRejectsSupersededToken(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := from.Add(time.Hour)

	svc, store, codec := newVerifier(t, now)
	app := approvedApp(t, codec, 11, 2, from, from.AddDate(0, 0, 1))
	stale := app.ExitPass.Code

	// The stored credential was re-minted; the old token no longer matches
	fresh, err := codec.Issue(11, 2, gatepass.PurposeExit, from, from, from.AddDate(0, 0, 1))
	require.NoError(t, err)
	app.ExitPass.Code = fresh.Code
	store.apps[11] = app

	_, err = svc.Verify(context.Background(), stale)
	assert.ErrorIs(t, err, apperrors.ErrPassTokenInvalid)
}

func TestVerifyPurposesAreIndependent(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	svc, store, codec := newVerifier(t, from.Add(time.Hour))
	app := approvedApp(t, codec, 21, 3, from, to)
	store.apps[21] = app

	// Exit at the start of the leave
	_, err := svc.Verify(context.Background(), app.ExitPass.Code)
	require.NoError(t, err)

	// Entry the next day; consuming the exit pass must not touch it
	svc.now = func() time.Time { return to.Add(time.Hour) }
	_, err = svc.Verify(context.Background(), app.EntryPass.Code)
	require.NoError(t, err)

	assert.True(t, store.apps[21].ExitPass.Used)
	assert.True(t, store.apps[21].EntryPass.Used)
}

func TestMarkUsed(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := from.Add(time.Hour)

	svc, store, codec := newVerifier(t, now)
	app := approvedApp(t, codec, 30, 6, from, from.AddDate(0, 0, 2))
	store.apps[30] = app

	result, err := svc.MarkUsed(context.Background(), 30, gatepass.PurposeEntry)
	require.NoError(t, err)
	assert.Equal(t, "ENTRY", result.Purpose)
	assert.True(t, store.apps[30].EntryPass.Used)

	// Second attempt hits the same single-use guard
	_, err = svc.MarkUsed(context.Background(), 30, gatepass.PurposeEntry)
	assert.ErrorIs(t, err, apperrors.ErrPassAlreadyUsed)
}

func TestMarkUsedRejectsUnapproved(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	svc, store, codec := newVerifier(t, from)
	app := approvedApp(t, codec, 31, 6, from, from.AddDate(0, 0, 2))
	app.Status = models.LeavePending
	store.apps[31] = app

	_, err := svc.MarkUsed(context.Background(), 31, gatepass.PurposeExit)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotApproved)
}

func TestMarkUsedRejectsUnknownPurpose(t *testing.T) {
	svc, _, _ := newVerifier(t, time.Now())

	_, err := svc.MarkUsed(context.Background(), 1, gatepass.Purpose("SIDEWAYS"))
	assert.ErrorIs(t, err, apperrors.ErrPassWrongPurpose)
}
