package http

import (
	"encoding/json"
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/domain/teacher"
	"github.com/edutrack/edutrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TeacherHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	StartEnrollment(w http.ResponseWriter, r *http.Request)
	CancelEnrollment(w http.ResponseWriter, r *http.Request)
	EnrollmentState(w http.ResponseWriter, r *http.Request)
}

type teacherHandlerImpl struct {
	teacherService teacher.TeacherService
}

func NewTeacherHandler(teacherService teacher.TeacherService) TeacherHandler {
	return &teacherHandlerImpl{
		teacherService: teacherService,
	}
}

// Register implements TeacherHandler.
func (h *teacherHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req teacher.RegisterTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}

	resp, err := h.teacherService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Teacher registered", resp)
}

// List implements TeacherHandler.
func (h *teacherHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, teachers)
}

// Remove implements TeacherHandler.
func (h *teacherHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if err := h.teacherService.Remove(r.Context(), uid); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Teacher removed", nil)
}

// StartEnrollment implements TeacherHandler.
func (h *teacherHandlerImpl) StartEnrollment(w http.ResponseWriter, r *http.Request) {
	if err := h.teacherService.StartEnrollment(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Scan mode enabled", nil)
}

// CancelEnrollment implements TeacherHandler.
func (h *teacherHandlerImpl) CancelEnrollment(w http.ResponseWriter, r *http.Request) {
	if err := h.teacherService.CancelEnrollment(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Enrollment cancelled", nil)
}

// EnrollmentState implements TeacherHandler.
func (h *teacherHandlerImpl) EnrollmentState(w http.ResponseWriter, r *http.Request) {
	state, err := h.teacherService.GetEnrollmentState(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}
