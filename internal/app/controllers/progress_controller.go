package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models/dto"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/services"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/middleware"
)

// ProgressController serves the derived endpoints: catalog, flowchart
// progress, the gated status change, the schedule grid and the ranking.
type ProgressController struct {
	catalog         *catalog.Catalog
	progressService *services.ProgressService
	studentService  *services.StudentService
	scheduleService *services.ScheduleService
	rankingService  *services.RankingService
}

// NewProgressController creates a new ProgressController.
func NewProgressController(
	cat *catalog.Catalog,
	progressService *services.ProgressService,
	studentService *services.StudentService,
	scheduleService *services.ScheduleService,
	rankingService *services.RankingService,
) *ProgressController {
	return &ProgressController{
		catalog:         cat,
		progressService: progressService,
		studentService:  studentService,
		scheduleService: scheduleService,
		rankingService:  rankingService,
	}
}

// GetCourses returns the curriculum flowchart
// @Summary Get the course catalog
// @Description Returns every flowchart node, elective groups and the sequential elective slots with their shared pool
// @Tags courses
// @Produce json
// @Success 200 {object} object
// @Router /courses [get]
func (c *ProgressController) GetCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"courses":       c.catalog.Courses(),
		"electiveSlots": c.catalog.ElectiveSlots(),
		"electivePool":  c.catalog.ElectivePool(),
	})
}

// GetPreview returns the logged-out flowchart
// @Summary Get the progress preview
// @Description The flowchart without a student: every course NOT_TAKEN and freely navigable
// @Tags progress
// @Produce json
// @Success 200 {object} dto.ProgressResponse
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded yet"
// @Router /progress [get]
func (c *ProgressController) GetPreview(ctx *gin.Context) {
	resp, err := c.progressService.Preview()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetProgress returns the derived flowchart state for a student
// @Summary Get student progress
// @Description Derives per-course statuses, gate reports and the credit summary; registers unknown students
// @Tags progress
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Success 200 {object} dto.ProgressResponse
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded yet"
// @Router /students/{studentId}/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return
	}

	resp, err := c.progressService.Progress(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateCourseStatus applies one gated status change
// @Summary Change a course status
// @Description Validates the prerequisite/credit gate, mutates the backend lists and returns the refetched state
// @Tags progress
// @Accept json
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Param courseId path string true "Frontend course id"
// @Param request body dto.UpdateCourseStatusRequest true "New status"
// @Success 200 {object} object "Refetched student plus freshly derived statuses"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Gate rejection: missing prerequisites or credits"
// @Router /students/{studentId}/courses/{courseId}/status [put]
func (c *ProgressController) UpdateCourseStatus(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	courseID := ctx.Param("courseId")
	if studentID == "" || courseID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID and Course ID are required"))
		return
	}

	var req dto.UpdateCourseStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("status must be one of COMPLETED, CURRENT, NOT_TAKEN"))
		return
	}

	student, statuses, err := c.studentService.UpdateCourseStatus(
		ctx.Request.Context(), studentID, courseID, models.CourseStatus(req.Status), req.ClassNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"student":  student,
		"statuses": statuses,
	})
}

// GetSchedule returns the weekly grid of current classes
// @Summary Get the schedule grid
// @Tags progress
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Success 200 {object} dto.ScheduleResponse
// @Router /students/{studentId}/schedule [get]
func (c *ProgressController) GetSchedule(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return
	}

	resp, err := c.scheduleService.Schedule(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetRanking returns the same-cohort ranking window
// @Summary Get the cohort ranking
// @Description Top 5 of the student's entry-year cohort, plus the student's own entry when outside the top 5
// @Tags progress
// @Produce json
// @Param studentId path string true "Student matrícula"
// @Success 200 {object} dto.RankingResponse
// @Router /students/{studentId}/ranking [get]
func (c *ProgressController) GetRanking(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return
	}

	resp, err := c.rankingService.Ranking(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
