package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/auth"
	"github.com/KoruApps/courseboard-go/internal/middleware"
	"github.com/KoruApps/courseboard-go/internal/store"
)

// SetupRoutes wires the whole API surface. Reads require a valid token;
// writes additionally require an admin account. Every semester-scoped
// route goes through the semester middleware, which loads the current
// snapshot for the handlers.
func SetupRoutes(r *gin.Engine, jwtService *auth.JWTService, semesters store.SemesterStore, users UserDirectory) {
	api := r.Group("/api")

	api.POST("/auth/login", Login(jwtService, users))

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(jwtService))

	authed.GET("/semesters", ListSemesters(semesters))

	sem := authed.Group("/semesters/:semester")
	sem.Use(middleware.SemesterMiddleware(semesters))
	{
		sem.GET("", GetSemester())
		sem.GET("/children/:child/schedule", GetChildSchedule())

		day := sem.Group("/days/:day")
		{
			day.GET("/board", GetBoard())
			day.GET("/problems", GetOpenProblems())
			day.GET("/courses/:course/children", GetCourseChildren())
			day.GET("/courses/:course/move-targets", GetMoveTargets())
			day.GET("/children/:child/blocking-reason", GetBlockingReason())
		}

		admin := sem.Group("/days/:day")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/allocate", AllocateDay(semesters))
			admin.POST("/moves", MoveChild(semesters))
			admin.POST("/waitlist", MoveChildToWaitingList(semesters))

			admin.POST("/courses/:course/toggle-full", ToggleCourseFull(semesters))
			admin.POST("/courses/:course/toggle-approval", ToggleCourseApproval(semesters))

			admin.POST("/courses/:course/notes", AddNote(semesters))
			admin.PUT("/courses/:course/notes/:note", EditNote(semesters))
			admin.DELETE("/courses/:course/notes/:note", DeleteNote(semesters))
			admin.POST("/courses/:course/notes/:note/toggle-problem", ToggleNoteProblem(semesters))
			admin.POST("/courses/:course/notes/:note/toggle-resolved", ToggleNoteResolved(semesters))
		}
	}
}
