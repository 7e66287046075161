package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/gatepass"
)

// fakeLeaveStore is an in-memory LeaveStore mirroring the SQL repository's
// conditional-update semantics.
type fakeLeaveStore struct {
	mu     sync.Mutex
	nextID int64
	apps   map[int64]*models.LeaveApplication
}

func newFakeLeaveStore() *fakeLeaveStore {
	return &fakeLeaveStore{nextID: 1, apps: make(map[int64]*models.LeaveApplication)}
}

func (f *fakeLeaveStore) Create(_ context.Context, app *models.LeaveApplication) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	cp := *app
	cp.ID = id
	cp.CreatedAt = time.Now()
	f.apps[id] = &cp
	return id, nil
}

func (f *fakeLeaveStore) GetByID(_ context.Context, id int64) (*models.LeaveApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrLeaveNotFound
	}
	cp := *app
	return &cp, nil
}

func (f *fakeLeaveStore) ListByStudent(_ context.Context, studentID int64, _ uint64, _ int) ([]*models.LeaveApplication, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.LeaveApplication
	for _, app := range f.apps {
		if app.StudentID == studentID {
			cp := *app
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveStore) List(_ context.Context, status models.LeaveStatus, _ uint64, _ int) ([]*models.LeaveApplication, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.LeaveApplication
	for _, app := range f.apps {
		if status == "" || app.Status == status {
			cp := *app
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveStore) DeletePending(_ context.Context, id, studentID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return apperrors.ErrLeaveNotFound
	}
	if app.StudentID != studentID {
		return apperrors.ErrLeaveNotOwned
	}
	if app.Status != models.LeavePending {
		return apperrors.ErrLeaveNotPending
	}
	delete(f.apps, id)
	return nil
}

func (f *fakeLeaveStore) Approve(_ context.Context, id int64, adminComments string, exit, entry *gatepass.Pass) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return apperrors.ErrLeaveNotFound
	}
	if app.Status != models.LeavePending {
		return apperrors.ErrLeaveNotPending
	}
	app.Status = models.LeaveApproved
	if adminComments != "" {
		app.AdminComments = &adminComments
	}
	app.ExitPass = &models.GatePass{
		LeaveApplicationID: id, Purpose: exit.Purpose,
		Code: exit.Code, ValidFrom: exit.ValidFrom, ValidUntil: exit.ValidUntil,
	}
	app.EntryPass = &models.GatePass{
		LeaveApplicationID: id, Purpose: entry.Purpose,
		Code: entry.Code, ValidFrom: entry.ValidFrom, ValidUntil: entry.ValidUntil,
	}
	return nil
}

func (f *fakeLeaveStore) Reject(_ context.Context, id int64, adminComments string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return apperrors.ErrLeaveNotFound
	}
	if app.Status != models.LeavePending {
		return apperrors.ErrLeaveNotPending
	}
	app.Status = models.LeaveRejected
	app.AdminComments = &adminComments
	return nil
}

// fakeStudentLookup resolves user IDs to student profiles
type fakeStudentLookup struct {
	students map[int64]*models.Student
}

func (f *fakeStudentLookup) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	student, ok := f.students[userID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func newLeaveService(t *testing.T, now time.Time) (*LeaveService, *fakeLeaveStore, *fakeStudentLookup) {
	t.Helper()
	store := newFakeLeaveStore()
	students := &fakeStudentLookup{students: map[int64]*models.Student{
		10: {ID: 1, UserID: 10, RollNumber: "H-001", AdmissionStatus: models.AdmissionAdmitted},
		11: {ID: 2, UserID: 11, RollNumber: "H-002", AdmissionStatus: models.AdmissionAdmitted},
		12: {ID: 3, UserID: 12, RollNumber: "H-003", AdmissionStatus: models.AdmissionPending},
	}}
	codec := gatepass.NewCodec("leave-test-secret", "hostelmate.test/gate")
	svc := NewLeaveService(store, students, codec)
	svc.now = func() time.Time { return now }
	return svc, store, students
}

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func validRequest() *dto.CreateLeaveRequest {
	return &dto.CreateLeaveRequest{
		LeaveType: "HOME_VISIT",
		FromDate:  "2025-06-10",
		ToDate:    "2025-06-15",
		Reason:    "family event",
	}
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	svc, store, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.LeavePending, app.Status)
	assert.Equal(t, int64(1), app.StudentID)
	assert.Equal(t, 6, app.TotalDays) // inclusive day count
	assert.Len(t, store.apps, 1)
}

func TestSubmitSingleDayLeave(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	req := validRequest()
	req.FromDate = "2025-06-10"
	req.ToDate = "2025-06-10"

	app, err := svc.Submit(context.Background(), 10, req)
	require.NoError(t, err)
	assert.Equal(t, 1, app.TotalDays)
}

func TestSubmitValidationListsAllOffendingFields(t *testing.T) {
	svc, store, _ := newLeaveService(t, testNow)

	req := &dto.CreateLeaveRequest{
		LeaveType: "VACATION",   // unknown type
		FromDate:  "2025-05-01", // in the past
		ToDate:    "2025-04-28",
		Reason:    "",
	}

	_, err := svc.Submit(context.Background(), 10, req)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	details := apperrors.DetailsOf(err)
	require.NotNil(t, details)
	assert.Contains(t, details, "leaveType")
	assert.Contains(t, details, "fromDate")
	assert.Contains(t, details, "reason")
	assert.Empty(t, store.apps)
}

func TestSubmitRejectsReversedDates(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	req := validRequest()
	req.FromDate = "2025-06-15"
	req.ToDate = "2025-06-10"

	_, err := svc.Submit(context.Background(), 10, req)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Contains(t, apperrors.DetailsOf(err), "toDate")
}

func TestSubmitAllowsToday(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	req := validRequest()
	req.FromDate = "2025-06-01"
	req.ToDate = "2025-06-02"

	_, err := svc.Submit(context.Background(), 10, req)
	assert.NoError(t, err)
}

func TestSubmitRequiresAdmittedStudent(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	_, err := svc.Submit(context.Background(), 12, validRequest())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotAdmitted)
}

func TestApproveIssuesBothPasses(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), app.ID, "have a safe trip")
	require.NoError(t, err)
	assert.Equal(t, models.LeaveApproved, approved.Status)
	require.NotNil(t, approved.ExitPass)
	require.NotNil(t, approved.EntryPass)

	// Exit window opens on the first leave day, entry on the last
	assert.True(t, approved.ExitPass.ValidFrom.Equal(approved.FromDate))
	assert.True(t, approved.EntryPass.ValidFrom.Equal(approved.ToDate))
	assert.True(t, approved.EntryPass.ValidFrom.After(approved.ExitPass.ValidFrom))
	assert.False(t, approved.ExitPass.Used)
	assert.False(t, approved.EntryPass.Used)
}

func TestApproveRejectsDecidedApplication(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), app.ID, "")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), app.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotPending)
}

func TestRejectRequiresComments(t *testing.T) {
	svc, store, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), app.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrAdminCommentsEmpty)
	assert.Equal(t, models.LeavePending, store.apps[app.ID].Status)

	rejected, err := svc.Reject(context.Background(), app.ID, "dates clash with exams")
	require.NoError(t, err)
	assert.Equal(t, models.LeaveRejected, rejected.Status)
	require.NotNil(t, rejected.AdminComments)
	assert.Equal(t, "dates clash with exams", *rejected.AdminComments)
	assert.Nil(t, rejected.ExitPass)
	assert.Nil(t, rejected.EntryPass)
}

func TestCancelPendingOnly(t *testing.T) {
	svc, store, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)

	// Another student cannot withdraw it
	err = svc.Cancel(context.Background(), 11, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotOwned)

	// Owner can, while still pending
	err = svc.Cancel(context.Background(), 10, app.ID)
	require.NoError(t, err)
	assert.Empty(t, store.apps)
}

func TestCancelRejectsDecidedApplication(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), app.ID, "")
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), 10, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotPending)
}

func TestGetPassesRequiresOwnership(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), app.ID, "")
	require.NoError(t, err)

	_, err = svc.GetPasses(context.Background(), 11, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotOwned)
}

func TestGetPassesRequiresApproval(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)

	_, err = svc.GetPasses(context.Background(), 10, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotApproved)
}

func TestGetPassesRendersQRImages(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), app.ID, "")
	require.NoError(t, err)

	passes, err := svc.GetPasses(context.Background(), 10, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, passes.LeaveApplicationID)
	assert.Equal(t, "EXIT", passes.ExitPass.Purpose)
	assert.Equal(t, "ENTRY", passes.EntryPass.Purpose)
	assert.Contains(t, passes.ExitPass.QRImage, "data:image/png;base64,")
	assert.Contains(t, passes.EntryPass.QRImage, "data:image/png;base64,")
	assert.NotEqual(t, passes.ExitPass.Code, passes.EntryPass.Code)
}

func TestGetByIDEnforcesOwnershipForStudents(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	app, err := svc.Submit(context.Background(), 10, validRequest())
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 11, false, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotOwned)

	// Admins see everything
	got, err := svc.GetByID(context.Background(), 11, true, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc, _, _ := newLeaveService(t, testNow)

	_, _, err := svc.List(context.Background(), models.LeaveStatus("WITHDRAWN"), 0, 10)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
