package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models/dto"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/middleware"
)

// DisciplineController proxies discipline reads, class mutations and the
// upstream scrape triggers.
type DisciplineController struct {
	backend *backend.Client
}

// NewDisciplineController creates a new DisciplineController.
func NewDisciplineController(client *backend.Client) *DisciplineController {
	return &DisciplineController{backend: client}
}

// ListDisciplines proxies the full discipline list
// @Summary List disciplines
// @Tags disciplines
// @Produce json
// @Success 200 {array} models.Discipline
// @Router /disciplines [get]
func (c *DisciplineController) ListDisciplines(ctx *gin.Context) {
	raw, err := c.backend.ListDisciplines(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}

// GetDiscipline proxies one discipline's detail
// @Summary Get discipline detail
// @Description Returns the discipline with its classes (teacher, times, WhatsApp link)
// @Tags disciplines
// @Produce json
// @Param disciplineId path string true "Backend discipline id"
// @Success 200 {object} models.Discipline
// @Failure 400 {object} dto.ErrorResponse
// @Router /disciplines/{disciplineId} [get]
func (c *DisciplineController) GetDiscipline(ctx *gin.Context) {
	disciplineID := ctx.Param("disciplineId")
	if disciplineID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Discipline ID is required"))
		return
	}

	raw, err := c.backend.GetDisciplineRaw(ctx.Request.Context(), disciplineID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}

// PatchClassWhatsApp stores a class's WhatsApp group link
// @Summary Set a class WhatsApp link
// @Tags disciplines
// @Accept json
// @Produce json
// @Param disciplineId path string true "Backend discipline id"
// @Param classNumber path int true "Class number"
// @Param request body dto.WhatsappGroupRequest true "Group link"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Router /disciplines/{disciplineId}/classes/{classNumber} [patch]
func (c *DisciplineController) PatchClassWhatsApp(ctx *gin.Context) {
	disciplineID := ctx.Param("disciplineId")
	if disciplineID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Discipline ID is required"))
		return
	}

	classNumber, err := strconv.Atoi(ctx.Param("classNumber"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("classNumber must be a number"))
		return
	}

	var req dto.WhatsappGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("a valid whatsappGroup URL is required"))
		return
	}

	raw, err := c.backend.PatchClassWhatsApp(ctx.Request.Context(), disciplineID, classNumber, req.WhatsappGroup)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", orEmptyObject(raw))
}

// ScrapeDisciplines triggers the upstream discipline scrape job
// @Summary Refresh disciplines
// @Description Starts the background scrape of the university system; answers 202 with no body
// @Tags disciplines
// @Success 202
// @Failure 500 {object} dto.ErrorResponse
// @Router /disciplines/actions/scrape [post]
func (c *DisciplineController) ScrapeDisciplines(ctx *gin.Context) {
	if err := c.backend.TriggerScrape(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusAccepted)
}

// ScrapeWhatsApp triggers the upstream WhatsApp-link scrape job
// @Summary Refresh WhatsApp groups
// @Description Starts the background WhatsApp-link scrape; answers 202 with no body
// @Tags disciplines
// @Success 202
// @Failure 500 {object} dto.ErrorResponse
// @Router /disciplines/actions/scrape-whatsapp [post]
func (c *DisciplineController) ScrapeWhatsApp(ctx *gin.Context) {
	if err := c.backend.TriggerWhatsAppScrape(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusAccepted)
}

// ListTeachers proxies the teacher roster
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {array} models.Teacher
// @Router /teachers [get]
func (c *DisciplineController) ListTeachers(ctx *gin.Context) {
	raw, err := c.backend.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}
