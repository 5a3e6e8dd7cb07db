package teacher

import (
	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
)

type RegisterTeacherRequest struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

func (r *RegisterTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUID(r.UID) {
		errs = append(errs, validator.ValidationError{
			Field:   "uid",
			Message: "uid must be a hex card identifier",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeacherResponse struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type EnrollmentStateResponse struct {
	Scanning  bool    `json:"scanning"`
	LatestUID *string `json:"latest_uid,omitempty"`
}
