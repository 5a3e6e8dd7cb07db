package teacher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/edutrack/edutrack-backend-go/internal/domain/teacher"
)

type TeacherServiceImpl struct {
	teacher.TeacherRepository
	deviceRepo teacher.DeviceStateRepository
}

// Register implements teacher.TeacherService.
func (s *TeacherServiceImpl) Register(ctx context.Context, req teacher.RegisterTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}
	uid := strings.ToUpper(req.UID)

	if _, err := s.TeacherRepository.GetByUID(ctx, uid); err == nil {
		return teacher.TeacherResponse{}, teacher.ErrUIDAlreadyTaken
	} else if !errors.Is(err, teacher.ErrTeacherNotFound) {
		return teacher.TeacherResponse{}, fmt.Errorf("failed to check existing teacher: %w", err)
	}

	created, err := s.TeacherRepository.Create(ctx, teacher.Teacher{
		UID:  uid,
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		return teacher.TeacherResponse{}, fmt.Errorf("failed to create teacher: %w", err)
	}

	// A successful registration ends the enrollment handshake, like the
	// dashboard clearing latest_scan and scan_mode after saving.
	if err := s.deviceRepo.ClearLatestScan(ctx); err != nil {
		return teacher.TeacherResponse{}, fmt.Errorf("failed to clear enrollment scan: %w", err)
	}
	if err := s.deviceRepo.SetScanMode(ctx, false); err != nil {
		return teacher.TeacherResponse{}, fmt.Errorf("failed to disable scan mode: %w", err)
	}

	return mapTeacherToResponse(created), nil
}

// List implements teacher.TeacherService.
func (s *TeacherServiceImpl) List(ctx context.Context) ([]teacher.TeacherResponse, error) {
	teachers, err := s.TeacherRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}

	sort.Slice(teachers, func(i, j int) bool { return teachers[i].Name < teachers[j].Name })

	responses := make([]teacher.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		responses = append(responses, mapTeacherToResponse(t))
	}
	return responses, nil
}

// Remove implements teacher.TeacherService.
func (s *TeacherServiceImpl) Remove(ctx context.Context, uid string) error {
	if err := s.TeacherRepository.Delete(ctx, strings.ToUpper(uid)); err != nil {
		if errors.Is(err, teacher.ErrTeacherNotFound) {
			return teacher.ErrTeacherNotFound
		}
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	return nil
}

// StartEnrollment implements teacher.TeacherService.
func (s *TeacherServiceImpl) StartEnrollment(ctx context.Context) error {
	if err := s.deviceRepo.SetScanMode(ctx, true); err != nil {
		return fmt.Errorf("failed to enable scan mode: %w", err)
	}
	return nil
}

// CancelEnrollment implements teacher.TeacherService.
func (s *TeacherServiceImpl) CancelEnrollment(ctx context.Context) error {
	scanning, err := s.deviceRepo.GetScanMode(ctx)
	if err != nil {
		return fmt.Errorf("failed to read scan mode: %w", err)
	}
	if !scanning {
		return teacher.ErrScanModeDisabled
	}

	if err := s.deviceRepo.ClearLatestScan(ctx); err != nil {
		return fmt.Errorf("failed to clear enrollment scan: %w", err)
	}
	if err := s.deviceRepo.SetScanMode(ctx, false); err != nil {
		return fmt.Errorf("failed to disable scan mode: %w", err)
	}
	return nil
}

// GetEnrollmentState implements teacher.TeacherService.
func (s *TeacherServiceImpl) GetEnrollmentState(ctx context.Context) (teacher.EnrollmentStateResponse, error) {
	scanning, err := s.deviceRepo.GetScanMode(ctx)
	if err != nil {
		return teacher.EnrollmentStateResponse{}, fmt.Errorf("failed to read scan mode: %w", err)
	}
	latest, err := s.deviceRepo.GetLatestScan(ctx)
	if err != nil {
		return teacher.EnrollmentStateResponse{}, fmt.Errorf("failed to read latest scan: %w", err)
	}
	return teacher.EnrollmentStateResponse{Scanning: scanning, LatestUID: latest}, nil
}

func mapTeacherToResponse(t teacher.Teacher) teacher.TeacherResponse {
	return teacher.TeacherResponse{
		UID:       t.UID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewTeacherService(
	teacherRepo teacher.TeacherRepository,
	deviceRepo teacher.DeviceStateRepository,
) teacher.TeacherService {
	return &TeacherServiceImpl{
		TeacherRepository: teacherRepo,
		deviceRepo:        deviceRepo,
	}
}
