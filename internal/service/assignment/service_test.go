package assignment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	getByID      func(ctx context.Context, id string) (shift.Shift, error)
	getForUpdate func(ctx context.Context, id string) (shift.Shift, error)
}

func (s *shiftRepoStub) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return s.getByID(ctx, id)
}

func (s *shiftRepoStub) GetByIDForUpdate(ctx context.Context, id string) (shift.Shift, error) {
	return s.getForUpdate(ctx, id)
}

type assignmentRepoStub struct {
	assignment.Repository
	getByShiftAndWorker func(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error)
	create              func(ctx context.Context, a assignment.ShiftAssignment) (assignment.ShiftAssignment, error)
	listByShift         func(ctx context.Context, shiftID string) ([]assignment.ShiftAssignment, error)
	deleteFn            func(ctx context.Context, id string) error
}

func (s *assignmentRepoStub) GetByShiftAndWorker(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error) {
	return s.getByShiftAndWorker(ctx, shiftID, workerID)
}

func (s *assignmentRepoStub) Create(ctx context.Context, a assignment.ShiftAssignment) (assignment.ShiftAssignment, error) {
	return s.create(ctx, a)
}

func (s *assignmentRepoStub) ListByShift(ctx context.Context, shiftID string) ([]assignment.ShiftAssignment, error) {
	return s.listByShift(ctx, shiftID)
}

func (s *assignmentRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type workerRepoStub struct {
	worker.Repository
	getByID func(ctx context.Context, id string) (worker.Worker, error)
}

func (s *workerRepoStub) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return s.getByID(ctx, id)
}

func managerActor() worker.Actor {
	return worker.Actor{WorkerID: "m1", AgencyID: "a1", Role: worker.RoleManager}
}

func agencyWorker(id string) worker.Worker {
	return worker.Worker{ID: id, AgencyID: "a1", FirstName: "Ada", LastName: "Okafor", IsActive: true}
}

func openShift() shift.Shift {
	return shift.Shift{
		ID:        "s1",
		AgencyID:  "a1",
		Name:      "Night Cover",
		ShiftRole: "Staff",
		Status:    shift.StatusOpen,
		Capacity:  2,
		IsActive:  true,
	}
}

func newService(shifts *shiftRepoStub, assignments *assignmentRepoStub, workers *workerRepoStub) assignment.Service {
	return NewAssignmentService(txStub{}, shifts, assignments, workers)
}

func TestAssign_Success(t *testing.T) {
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return openShift(), nil
	}}
	var created assignment.ShiftAssignment
	assignments := &assignmentRepoStub{
		getByShiftAndWorker: func(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error) {
			return nil, nil
		},
		create: func(ctx context.Context, a assignment.ShiftAssignment) (assignment.ShiftAssignment, error) {
			a.ID = "as1"
			created = a
			return a, nil
		},
	}
	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		return agencyWorker(id), nil
	}}

	req := assignment.AssignRequest{ShiftID: "s1", WorkerID: "w1", Role: "Supervisor"}
	resp, err := newService(shifts, assignments, workers).Assign(context.Background(), managerActor(), req)
	require.NoError(t, err)
	assert.Equal(t, "as1", resp.ID)
	assert.Equal(t, "Supervisor", created.Role)
	assert.Equal(t, assignment.StatusConfirmed, created.Status)
}

func TestAssign_DefaultsRole(t *testing.T) {
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return openShift(), nil
	}}
	var created assignment.ShiftAssignment
	assignments := &assignmentRepoStub{
		getByShiftAndWorker: func(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error) {
			return nil, nil
		},
		create: func(ctx context.Context, a assignment.ShiftAssignment) (assignment.ShiftAssignment, error) {
			created = a
			return a, nil
		},
	}
	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		return agencyWorker(id), nil
	}}

	req := assignment.AssignRequest{ShiftID: "s1", WorkerID: "w1"}
	_, err := newService(shifts, assignments, workers).Assign(context.Background(), managerActor(), req)
	require.NoError(t, err)
	assert.Equal(t, shift.DefaultWorkRole, created.Role)
}

func TestAssign_UnknownWorkRoleRejected(t *testing.T) {
	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		return agencyWorker(id), nil
	}}

	req := assignment.AssignRequest{ShiftID: "s1", WorkerID: "w1", Role: "Astronaut"}
	_, err := newService(nil, nil, workers).Assign(context.Background(), managerActor(), req)
	assert.ErrorIs(t, err, assignment.ErrInvalidWorkRole)
}

func TestAssign_StaffActorRejected(t *testing.T) {
	actor := worker.Actor{WorkerID: "w1", AgencyID: "a1", Role: worker.RoleStaff}
	req := assignment.AssignRequest{ShiftID: "s1", WorkerID: "w2"}
	_, err := newService(nil, nil, nil).Assign(context.Background(), actor, req)
	assert.ErrorIs(t, err, assignment.ErrNotPermitted)
}

func TestAssign_CrossAgencyWorker(t *testing.T) {
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return openShift(), nil
	}}
	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		w := agencyWorker(id)
		w.AgencyID = "a2"
		return w, nil
	}}

	req := assignment.AssignRequest{ShiftID: "s1", WorkerID: "w1"}
	_, err := newService(shifts, nil, workers).Assign(context.Background(), managerActor(), req)
	assert.ErrorIs(t, err, assignment.ErrCrossAgency)
}

func TestAssign_ForeignShiftHidden(t *testing.T) {
	foreign := openShift()
	foreign.AgencyID = "a2"
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return foreign, nil
	}}
	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		return agencyWorker(id), nil
	}}

	req := assignment.AssignRequest{ShiftID: "s1", WorkerID: "w1"}
	_, err := newService(shifts, nil, workers).Assign(context.Background(), managerActor(), req)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestAssign_Duplicate(t *testing.T) {
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return openShift(), nil
	}}
	assignments := &assignmentRepoStub{getByShiftAndWorker: func(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error) {
		return &assignment.ShiftAssignment{ID: "as1"}, nil
	}}
	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		return agencyWorker(id), nil
	}}

	req := assignment.AssignRequest{ShiftID: "s1", WorkerID: "w1"}
	_, err := newService(shifts, assignments, workers).Assign(context.Background(), managerActor(), req)
	assert.ErrorIs(t, err, assignment.ErrAlreadyAssigned)
}

func TestAssign_ShiftFull(t *testing.T) {
	full := openShift()
	full.Capacity = 1
	full.ConfirmedCount = 1
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return full, nil
	}}
	assignments := &assignmentRepoStub{getByShiftAndWorker: func(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error) {
		return nil, nil
	}}
	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		return agencyWorker(id), nil
	}}

	req := assignment.AssignRequest{ShiftID: "s1", WorkerID: "w1"}
	_, err := newService(shifts, assignments, workers).Assign(context.Background(), managerActor(), req)
	assert.ErrorIs(t, err, shift.ErrShiftFull)
}

func TestUnassign_Success(t *testing.T) {
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return openShift(), nil
	}}
	deleted := ""
	assignments := &assignmentRepoStub{
		getByShiftAndWorker: func(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error) {
			return &assignment.ShiftAssignment{ID: "as1"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	req := assignment.UnassignRequest{ShiftID: "s1", WorkerID: "w1"}
	err := newService(shifts, assignments, nil).Unassign(context.Background(), managerActor(), req)
	require.NoError(t, err)
	assert.Equal(t, "as1", deleted)
}

func TestUnassign_NotFound(t *testing.T) {
	shifts := &shiftRepoStub{getForUpdate: func(ctx context.Context, id string) (shift.Shift, error) {
		return openShift(), nil
	}}
	assignments := &assignmentRepoStub{getByShiftAndWorker: func(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error) {
		return nil, nil
	}}

	req := assignment.UnassignRequest{ShiftID: "s1", WorkerID: "w1"}
	err := newService(shifts, assignments, nil).Unassign(context.Background(), managerActor(), req)
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotFound)
}

func TestListByShift_TenantScoped(t *testing.T) {
	foreign := openShift()
	foreign.AgencyID = "a2"
	shifts := &shiftRepoStub{getByID: func(ctx context.Context, id string) (shift.Shift, error) {
		return foreign, nil
	}}

	_, err := newService(shifts, nil, nil).ListByShift(context.Background(), managerActor(), "s1")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestListByShift_Success(t *testing.T) {
	shifts := &shiftRepoStub{getByID: func(ctx context.Context, id string) (shift.Shift, error) {
		return openShift(), nil
	}}
	assignments := &assignmentRepoStub{listByShift: func(ctx context.Context, shiftID string) ([]assignment.ShiftAssignment, error) {
		return []assignment.ShiftAssignment{
			{ID: "as1", ShiftID: shiftID, WorkerID: "w1", Status: assignment.StatusConfirmed},
			{ID: "as2", ShiftID: shiftID, WorkerID: "w2", Status: assignment.StatusConfirmed},
		}, nil
	}}

	resp, err := newService(shifts, assignments, nil).ListByShift(context.Background(), managerActor(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Len(t, resp.Assignments, 2)
}
