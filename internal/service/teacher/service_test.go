package teacher

import (
	"context"
	"testing"
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/domain/teacher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTeachers struct {
	teachers map[string]teacher.Teacher
}

func (s *stubTeachers) Create(_ context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.teachers[t.UID] = t
	return t, nil
}

func (s *stubTeachers) GetByUID(_ context.Context, uid string) (teacher.Teacher, error) {
	t, ok := s.teachers[uid]
	if !ok {
		return teacher.Teacher{}, teacher.ErrTeacherNotFound
	}
	return t, nil
}

func (s *stubTeachers) List(_ context.Context) ([]teacher.Teacher, error) {
	out := make([]teacher.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubTeachers) Delete(_ context.Context, uid string) error {
	if _, ok := s.teachers[uid]; !ok {
		return teacher.ErrTeacherNotFound
	}
	delete(s.teachers, uid)
	return nil
}

type stubDeviceState struct {
	scanMode bool
	latest   *string
}

func (s *stubDeviceState) SetScanMode(_ context.Context, enabled bool) error {
	s.scanMode = enabled
	return nil
}

func (s *stubDeviceState) GetScanMode(_ context.Context) (bool, error) { return s.scanMode, nil }

func (s *stubDeviceState) SetLatestScan(_ context.Context, uid string) error {
	s.latest = &uid
	return nil
}

func (s *stubDeviceState) GetLatestScan(_ context.Context) (*string, error) { return s.latest, nil }

func (s *stubDeviceState) ClearLatestScan(_ context.Context) error {
	s.latest = nil
	return nil
}

func newTestService() (teacher.TeacherService, *stubTeachers, *stubDeviceState) {
	repo := &stubTeachers{teachers: map[string]teacher.Teacher{}}
	device := &stubDeviceState{}
	return NewTeacherService(repo, device), repo, device
}

func TestTeacherService_Register(t *testing.T) {
	svc, repo, device := newTestService()
	ctx := context.Background()

	// Simulate a captured enrollment scan.
	require.NoError(t, device.SetScanMode(ctx, true))
	require.NoError(t, device.SetLatestScan(ctx, "04A3B2C1"))

	resp, err := svc.Register(ctx, teacher.RegisterTeacherRequest{UID: "04a3b2c1", Name: "  Alice  "})
	require.NoError(t, err)

	assert.Equal(t, "04A3B2C1", resp.UID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Contains(t, repo.teachers, "04A3B2C1")

	// Registration ends the handshake.
	assert.False(t, device.scanMode)
	assert.Nil(t, device.latest)
}

func TestTeacherService_Register_DuplicateUID(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, teacher.RegisterTeacherRequest{UID: "04A3B2C1", Name: "Alice"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, teacher.RegisterTeacherRequest{UID: "04A3B2C1", Name: "Alice Again"})
	assert.ErrorIs(t, err, teacher.ErrUIDAlreadyTaken)
}

func TestTeacherService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, teacher.RegisterTeacherRequest{UID: "not hex", Name: "Alice"})
	assert.Error(t, err)

	_, err = svc.Register(ctx, teacher.RegisterTeacherRequest{UID: "04A3B2C1", Name: "   "})
	assert.Error(t, err)
}

func TestTeacherService_ListSortedByName(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, reg := range []teacher.RegisterTeacherRequest{
		{UID: "04A3B2C1", Name: "Charlie"},
		{UID: "04D4E5F6", Name: "Alice"},
		{UID: "04AABBCC", Name: "Bob"},
	} {
		_, err := svc.Register(ctx, reg)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Alice", list[0].Name)
	assert.Equal(t, "Bob", list[1].Name)
	assert.Equal(t, "Charlie", list[2].Name)
}

func TestTeacherService_Remove(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, teacher.RegisterTeacherRequest{UID: "04A3B2C1", Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "04a3b2c1"))
	assert.Empty(t, repo.teachers)

	assert.ErrorIs(t, svc.Remove(ctx, "04A3B2C1"), teacher.ErrTeacherNotFound)
}

func TestTeacherService_EnrollmentLifecycle(t *testing.T) {
	svc, _, device := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.StartEnrollment(ctx))
	state, err := svc.GetEnrollmentState(ctx)
	require.NoError(t, err)
	assert.True(t, state.Scanning)
	assert.Nil(t, state.LatestUID)

	// Hardware captures a card.
	require.NoError(t, device.SetLatestScan(ctx, "DEADBEEF"))
	state, err = svc.GetEnrollmentState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.LatestUID)
	assert.Equal(t, "DEADBEEF", *state.LatestUID)

	require.NoError(t, svc.CancelEnrollment(ctx))
	state, err = svc.GetEnrollmentState(ctx)
	require.NoError(t, err)
	assert.False(t, state.Scanning)
	assert.Nil(t, state.LatestUID)
}

func TestTeacherService_CancelEnrollment_NotScanning(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.CancelEnrollment(context.Background())
	assert.ErrorIs(t, err, teacher.ErrScanModeDisabled)
}
