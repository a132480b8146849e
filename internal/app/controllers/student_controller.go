package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models/dto"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/services"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/middleware"
)

// StudentController handles the student CRUD surface: the derived list
// endpoint plus the thin proxies onto the progress backend.
type StudentController struct {
	studentService *services.StudentService
	backend        *backend.Client
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService *services.StudentService, client *backend.Client) *StudentController {
	return &StudentController{studentService: studentService, backend: client}
}

// ListStudents returns every registered student
// @Summary List students
// @Description Returns all registered students with their credit totals
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// GetStudent looks a student up, creating the record on first access
// @Summary Get (or register) a student
// @Description Fetches a student by matrícula; an unknown id registers a new record and answers 201
// @Tags students
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Success 200 {object} models.Student
// @Success 201 {object} models.Student "Student was just registered"
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/{studentId} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return
	}

	student, created, err := c.studentService.GetOrCreate(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, student)
}

// UpdateProfile forwards a name/lastName patch
// @Summary Update student profile
// @Tags students
// @Accept json
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/{studentId} [patch]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid profile body: "+err.Error()))
		return
	}

	fields := map[string]string{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.LastName != "" {
		fields["lastName"] = req.LastName
	}

	raw, err := c.backend.UpdateStudentProfile(ctx.Request.Context(), studentID, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}

// GetDisciplines proxies the student's discipline document
// @Summary Get a student's disciplines
// @Description Returns the upstream document with current and completed discipline lists
// @Tags students
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/{studentId}/disciplines [get]
func (c *StudentController) GetDisciplines(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return
	}

	raw, err := c.backend.GetStudentDisciplines(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}

// PutCurrentDiscipline proxies a class enrollment
// @Summary Enroll in a class
// @Description Adds a discipline with its class number to the student's current list. classNumber must be a JSON number.
// @Tags students
// @Accept json
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Param disciplineId path string true "Backend discipline id"
// @Param request body dto.EnrollClassRequest true "Class to enroll in"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse "classNumber missing or not a number; the backend is not contacted"
// @Router /students/{studentId}/current-disciplines/{disciplineId} [put]
func (c *StudentController) PutCurrentDiscipline(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	disciplineID := ctx.Param("disciplineId")
	if studentID == "" || disciplineID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID and Discipline ID are required"))
		return
	}

	var req dto.EnrollClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("classNumber must be a number"))
		return
	}

	raw, err := c.backend.PutCurrentDiscipline(ctx.Request.Context(), studentID, disciplineID, *req.ClassNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", orEmptyObject(raw))
}

// DeleteCurrentDiscipline proxies an enrollment removal
// @Summary Drop a current discipline
// @Tags students
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Param disciplineId path string true "Backend discipline id"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/{studentId}/current-disciplines/{disciplineId} [delete]
func (c *StudentController) DeleteCurrentDiscipline(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	disciplineID := ctx.Param("disciplineId")
	if studentID == "" || disciplineID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID and Discipline ID are required"))
		return
	}

	raw, err := c.backend.DeleteCurrentDiscipline(ctx.Request.Context(), studentID, disciplineID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", orEmptyObject(raw))
}

// GetCompletedDiscipline proxies a completed-discipline check
// @Summary Check a completed discipline
// @Tags students
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Param disciplineId path string true "Backend discipline id"
// @Success 200 {object} object
// @Router /students/{studentId}/completed-disciplines/{disciplineId} [get]
func (c *StudentController) GetCompletedDiscipline(ctx *gin.Context) {
	c.completedDiscipline(ctx, http.MethodGet)
}

// PutCompletedDiscipline proxies marking a discipline completed
// @Summary Mark a discipline completed
// @Tags students
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Param disciplineId path string true "Backend discipline id"
// @Success 200 {object} object
// @Router /students/{studentId}/completed-disciplines/{disciplineId} [put]
func (c *StudentController) PutCompletedDiscipline(ctx *gin.Context) {
	c.completedDiscipline(ctx, http.MethodPut)
}

// DeleteCompletedDiscipline proxies unmarking a completed discipline
// @Summary Unmark a completed discipline
// @Tags students
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Param disciplineId path string true "Backend discipline id"
// @Success 200 {object} object
// @Router /students/{studentId}/completed-disciplines/{disciplineId} [delete]
func (c *StudentController) DeleteCompletedDiscipline(ctx *gin.Context) {
	c.completedDiscipline(ctx, http.MethodDelete)
}

func (c *StudentController) completedDiscipline(ctx *gin.Context, method string) {
	studentID := ctx.Param("studentId")
	disciplineID := ctx.Param("disciplineId")
	if studentID == "" || disciplineID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID and Discipline ID are required"))
		return
	}

	var (
		raw []byte
		err error
	)
	rc := ctx.Request.Context()
	switch method {
	case http.MethodGet:
		raw, err = c.backend.GetCompletedDiscipline(rc, studentID, disciplineID)
	case http.MethodPut:
		raw, err = c.backend.PutCompletedDiscipline(rc, studentID, disciplineID)
	default:
		raw, err = c.backend.DeleteCompletedDiscipline(rc, studentID, disciplineID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", orEmptyObject(raw))
}

// orEmptyObject keeps the "returns backend JSON or {} on success" contract
// for upstream answers with an empty body.
func orEmptyObject(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("{}")
	}
	return raw
}
