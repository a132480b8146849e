package dto

// EnrollClassRequest is the body of PUT .../current-disciplines/:disciplineId.
// ClassNumber is a pointer so a missing or non-numeric value fails binding
// with 400 before the upstream backend is ever contacted.
type EnrollClassRequest struct {
	ClassNumber *int `json:"classNumber" binding:"required"`
}

// WhatsappGroupRequest is the body of PATCH .../classes/:classNumber.
type WhatsappGroupRequest struct {
	WhatsappGroup string `json:"whatsappGroup" binding:"required,url"`
}

// UpdateProfileRequest is the body of PATCH /students/:studentId.
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	LastName string `json:"lastName,omitempty"`
}

// UpdateCourseStatusRequest is the body of PUT .../courses/:courseId/status.
// ClassNumber is required only when the new status is CURRENT.
type UpdateCourseStatusRequest struct {
	Status      string `json:"status" binding:"required,oneof=COMPLETED CURRENT NOT_TAKEN"`
	ClassNumber *int   `json:"classNumber,omitempty"`
}
