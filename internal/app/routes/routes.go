package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	disciplineController *controllers.DisciplineController,
	progressController *controllers.ProgressController,
) {
	api := router.Group("/api")

	// Catalog and logged-out preview (no student required)
	api.GET("/courses", progressController.GetCourses)
	api.GET("/progress", progressController.GetPreview)

	// Students: list, lookup-or-register, profile, proxied discipline lists
	students := api.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:studentId", studentController.GetStudent)
		students.PATCH("/:studentId", studentController.UpdateProfile)
		students.GET("/:studentId/disciplines", studentController.GetDisciplines)

		students.PUT("/:studentId/current-disciplines/:disciplineId", studentController.PutCurrentDiscipline)
		students.DELETE("/:studentId/current-disciplines/:disciplineId", studentController.DeleteCurrentDiscipline)

		students.GET("/:studentId/completed-disciplines/:disciplineId", studentController.GetCompletedDiscipline)
		students.PUT("/:studentId/completed-disciplines/:disciplineId", studentController.PutCompletedDiscipline)
		students.DELETE("/:studentId/completed-disciplines/:disciplineId", studentController.DeleteCompletedDiscipline)

		// Derived state
		students.GET("/:studentId/progress", progressController.GetProgress)
		students.PUT("/:studentId/courses/:courseId/status", progressController.UpdateCourseStatus)
		students.GET("/:studentId/schedule", progressController.GetSchedule)
		students.GET("/:studentId/ranking", progressController.GetRanking)
	}

	// Disciplines and scrape triggers
	disciplines := api.Group("/disciplines")
	{
		disciplines.GET("", disciplineController.ListDisciplines)
		disciplines.GET("/:disciplineId", disciplineController.GetDiscipline)
		disciplines.PATCH("/:disciplineId/classes/:classNumber", disciplineController.PatchClassWhatsApp)
		disciplines.POST("/actions/scrape", disciplineController.ScrapeDisciplines)
		disciplines.POST("/actions/scrape-whatsapp", disciplineController.ScrapeWhatsApp)
	}

	// Teacher roster
	api.GET("/teachers", disciplineController.ListTeachers)
}
