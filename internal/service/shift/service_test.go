package shift

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/agency"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
)

type txStub struct{}

func (txStub) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type shiftRepoStub struct {
	shift.Repository
	create       func(ctx context.Context, sh shift.Shift) (shift.Shift, error)
	getByID      func(ctx context.Context, id string) (shift.Shift, error)
	getForUpdate func(ctx context.Context, id string) (shift.Shift, error)
	update       func(ctx context.Context, sh shift.Shift) error
	codeExists   func(ctx context.Context, code string) (bool, error)
	deactivate   func(ctx context.Context, id, agencyID string) error
}

func (s *shiftRepoStub) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	return s.create(ctx, sh)
}

func (s *shiftRepoStub) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return s.getByID(ctx, id)
}

func (s *shiftRepoStub) GetByIDForUpdate(ctx context.Context, id string) (shift.Shift, error) {
	return s.getForUpdate(ctx, id)
}

func (s *shiftRepoStub) Update(ctx context.Context, sh shift.Shift) error {
	return s.update(ctx, sh)
}

func (s *shiftRepoStub) CodeExists(ctx context.Context, code string) (bool, error) {
	return s.codeExists(ctx, code)
}

func (s *shiftRepoStub) Deactivate(ctx context.Context, id, agencyID string) error {
	return s.deactivate(ctx, id, agencyID)
}

type agencyRepoStub struct {
	agency.Repository
	getByID func(ctx context.Context, id string) (agency.Agency, error)
}

func (s *agencyRepoStub) GetByID(ctx context.Context, id string) (agency.Agency, error) {
	return s.getByID(ctx, id)
}

func ptr[T any](v T) *T { return &v }

func managerActor() worker.Actor {
	return worker.Actor{WorkerID: "m1", AgencyID: "a1", Role: worker.RoleManager}
}

func testAgency() agency.Agency {
	return agency.Agency{ID: "a1", Name: "Night Owls", Code: "AG-3F9A01BC"}
}

func validCreateRequest() shift.CreateShiftRequest {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	return shift.CreateShiftRequest{
		Name:      "Warehouse Cover",
		ShiftDate: tomorrow,
		EndDate:   tomorrow,
		StartTime: "09:00",
		EndTime:   "17:00",
		Capacity:  3,
	}
}

func newService(shifts *shiftRepoStub, agencies *agencyRepoStub) shift.Service {
	return NewShiftService(txStub{}, shifts, agencies)
}

func TestCreateShift_Success(t *testing.T) {
	var created shift.Shift
	shifts := &shiftRepoStub{
		codeExists: func(ctx context.Context, code string) (bool, error) { return false, nil },
		create: func(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
			sh.ID = "s1"
			created = sh
			return sh, nil
		},
	}
	agencies := &agencyRepoStub{getByID: func(ctx context.Context, id string) (agency.Agency, error) {
		return testAgency(), nil
	}}

	resp, err := newService(shifts, agencies).CreateShift(context.Background(), managerActor(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.ID)
	assert.True(t, strings.HasPrefix(created.Code, "AG-3F9A01BC-"))
	assert.Len(t, created.Code, len("AG-3F9A01BC-")+6)
	assert.Equal(t, shift.StatusOpen, created.Status)
	assert.Equal(t, shift.DefaultWorkRole, created.ShiftRole)
	assert.Equal(t, shift.TypeRegular, created.ShiftType)
	assert.InDelta(t, 8.0, created.DurationHours, 0.001)
}

func TestCreateShift_StaffRejected(t *testing.T) {
	actor := worker.Actor{WorkerID: "w1", AgencyID: "a1", Role: worker.RoleStaff}
	_, err := newService(nil, nil).CreateShift(context.Background(), actor, validCreateRequest())
	assert.ErrorIs(t, err, assignment.ErrNotPermitted)
}

func TestCreateShift_CodeCollisionRetries(t *testing.T) {
	attempts := 0
	shifts := &shiftRepoStub{
		codeExists: func(ctx context.Context, code string) (bool, error) {
			attempts++
			return attempts < 3, nil
		},
		create: func(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
			sh.ID = "s1"
			return sh, nil
		},
	}
	agencies := &agencyRepoStub{getByID: func(ctx context.Context, id string) (agency.Agency, error) {
		return testAgency(), nil
	}}

	_, err := newService(shifts, agencies).CreateShift(context.Background(), managerActor(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestCreateShift_CodeGenerationExhausted(t *testing.T) {
	shifts := &shiftRepoStub{codeExists: func(ctx context.Context, code string) (bool, error) {
		return true, nil
	}}
	agencies := &agencyRepoStub{getByID: func(ctx context.Context, id string) (agency.Agency, error) {
		return testAgency(), nil
	}}

	_, err := newService(shifts, agencies).CreateShift(context.Background(), managerActor(), validCreateRequest())
	assert.ErrorIs(t, err, shift.ErrCodeGeneration)
}

func TestCreateShift_InvalidTemporalFields(t *testing.T) {
	agencies := &agencyRepoStub{getByID: func(ctx context.Context, id string) (agency.Agency, error) {
		return testAgency(), nil
	}}

	req := validCreateRequest()
	req.StartTime = "17:00"
	req.EndTime = "09:00"

	_, err := newService(nil, agencies).CreateShift(context.Background(), managerActor(), req)
	assert.ErrorIs(t, err, shift.ErrInvalidRange)
}

func TestGetShift_CrossAgencyHidden(t *testing.T) {
	shifts := &shiftRepoStub{getByID: func(ctx context.Context, id string) (shift.Shift, error) {
		return shift.Shift{ID: id, AgencyID: "a2"}, nil
	}}

	_, err := newService(shifts, nil).GetShift(context.Background(), managerActor(), "s1")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestGetShift_AdminCrossesAgencies(t *testing.T) {
	shifts := &shiftRepoStub{getByID: func(ctx context.Context, id string) (shift.Shift, error) {
		return shift.Shift{ID: id, AgencyID: "a2", Name: "Other Agency Shift"}, nil
	}}

	admin := worker.Actor{WorkerID: "x1", AgencyID: "a1", Role: worker.RoleAdmin}
	resp, err := newService(shifts, nil).GetShift(context.Background(), admin, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Other Agency Shift", resp.Name)
}

func TestUpdateShift_Success(t *testing.T) {
	existing := shift.Shift{
		ID:        "s1",
		AgencyID:  "a1",
		Name:      "Old Name",
		ShiftDate: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		Status:    shift.StatusOpen,
		Capacity:  2,
	}
	var saved shift.Shift
	shifts := &shiftRepoStub{
		getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) { return existing, nil },
		update: func(ctx context.Context, sh shift.Shift) error {
			saved = sh
			return nil
		},
	}

	req := shift.UpdateShiftRequest{
		ID:       "s1",
		Name:     ptr("New Name"),
		Capacity: ptr(5),
	}
	resp, err := newService(shifts, nil).UpdateShift(context.Background(), managerActor(), req)
	require.NoError(t, err)
	assert.Equal(t, "New Name", saved.Name)
	assert.Equal(t, 5, saved.Capacity)
	assert.Equal(t, "New Name", resp.Name)
	// Untouched fields keep their values
	assert.Equal(t, shift.StatusOpen, saved.Status)
}

func TestUpdateShift_CompletedRejected(t *testing.T) {
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return shift.Shift{ID: id, AgencyID: "a1", IsCompleted: true}, nil
	}}

	req := shift.UpdateShiftRequest{ID: "s1", Name: ptr("New Name")}
	_, err := newService(shifts, nil).UpdateShift(context.Background(), managerActor(), req)
	assert.ErrorIs(t, err, assignment.ErrShiftAlreadyCompleted)
}

func TestDeleteShift_Elevated(t *testing.T) {
	var gotID, gotAgency string
	shifts := &shiftRepoStub{deactivate: func(ctx context.Context, id, agencyID string) error {
		gotID, gotAgency = id, agencyID
		return nil
	}}

	err := newService(shifts, nil).DeleteShift(context.Background(), managerActor(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", gotID)
	assert.Equal(t, "a1", gotAgency)

	staff := worker.Actor{WorkerID: "w1", AgencyID: "a1", Role: worker.RoleStaff}
	err = newService(shifts, nil).DeleteShift(context.Background(), staff, "s1")
	assert.ErrorIs(t, err, assignment.ErrNotPermitted)
}

func TestListShifts_NormalizesPagination(t *testing.T) {
	var gotFilter shift.Filter
	listStub := &listShiftRepoStub{list: func(ctx context.Context, f shift.Filter, agencyID string) ([]shift.Shift, int64, error) {
		gotFilter = f
		return []shift.Shift{{ID: "s1", AgencyID: agencyID}}, 1, nil
	}}

	resp, err := newService2(listStub).ListShifts(context.Background(), managerActor(), shift.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, gotFilter.Page)
	assert.Equal(t, 20, gotFilter.PageSize)
	assert.Equal(t, int64(1), resp.TotalCount)
}

type listShiftRepoStub struct {
	shift.Repository
	list func(ctx context.Context, f shift.Filter, agencyID string) ([]shift.Shift, int64, error)
}

func (s *listShiftRepoStub) List(ctx context.Context, f shift.Filter, agencyID string) ([]shift.Shift, int64, error) {
	return s.list(ctx, f, agencyID)
}

func newService2(shifts shift.Repository) shift.Service {
	return NewShiftService(txStub{}, shifts, nil)
}
