package main

import (
	"captura-leads.backend/internal/interfaces/http/handlers"
	"captura-leads.backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

type routeDeps struct {
	authHandler            *handlers.AuthHandler
	userHandler            *handlers.UserHandler
	leadHandler            *handlers.LeadHandler
	questionHandler        *handlers.QuestionHandler
	answerHandler          *handlers.AnswerHandler
	followUpHandler        *handlers.FollowUpHandler
	inquiryHandler         *handlers.InquiryHandler
	authMiddleware         gin.HandlerFunc
	optionalAuthMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	idempotent := middleware.IdempotencyMiddleware()

	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.POST("", d.userHandler.CreateUser)
			users.GET("", d.userHandler.ListUsers)
			users.GET("/:id", d.userHandler.GetUser)
			users.PATCH("/:id", d.userHandler.UpdateUser)
			users.PATCH("/:id/deactivate", d.userHandler.DeactivateUser)
			users.PATCH("/:id/activate", d.userHandler.ActivateUser)
			users.DELETE("/:id", d.userHandler.DeleteUser)
		}

		// Lead routes: the capture form is public, the funnel is staff only
		leads := v1.Group("/leads")
		{
			leads.POST("", idempotent, d.leadHandler.CreateLead)
			leads.POST("/capture", idempotent, d.leadHandler.CaptureLead)

			staff := leads.Group("", d.authMiddleware)
			staff.POST("/admin", d.leadHandler.CreateLead)
			staff.GET("", d.leadHandler.ListLeads)
			staff.GET("/stats", d.leadHandler.GetLeadStats)
			staff.GET("/status/:status", d.leadHandler.ListLeadsByStatus)
			staff.GET("/:id", d.leadHandler.GetLead)
			staff.PATCH("/:id", d.leadHandler.UpdateLead)
			staff.PATCH("/:id/deactivate", d.leadHandler.DeactivateLead)
			staff.PATCH("/:id/activate", d.leadHandler.ActivateLead)
			staff.DELETE("/:id", d.leadHandler.DeleteLead)
		}

		// Question routes: the active set feeds the public form
		questions := v1.Group("/questions")
		{
			questions.GET("/active", d.questionHandler.ListActiveQuestions)

			staff := questions.Group("", d.authMiddleware)
			staff.POST("", d.questionHandler.CreateQuestion)
			staff.GET("", d.questionHandler.ListQuestions)
			staff.GET("/:id", d.questionHandler.GetQuestion)
			staff.PATCH("/:id", d.questionHandler.UpdateQuestion)
			staff.PATCH("/:id/activate", d.questionHandler.ActivateQuestion)
			staff.DELETE("/:id", d.questionHandler.DeleteQuestion)
		}

		// Answer routes: submissions are public, staff are still attributed
		answers := v1.Group("/answers")
		{
			answers.POST("", d.optionalAuthMiddleware, idempotent, d.answerHandler.CreateAnswer)
			answers.POST("/batch", d.optionalAuthMiddleware, idempotent, d.answerHandler.SubmitAnswers)

			staff := answers.Group("", d.authMiddleware)
			staff.GET("", d.answerHandler.ListAnswers)
			staff.GET("/lead/:leadId", d.answerHandler.ListAnswersByLead)
			staff.GET("/:id", d.answerHandler.GetAnswer)
			staff.DELETE("/:id", d.answerHandler.DeleteAnswer)
		}

		// Follow-up routes (protected)
		followUps := v1.Group("/follow-ups")
		followUps.Use(d.authMiddleware)
		{
			followUps.POST("", d.followUpHandler.CreateFollowUp)
			followUps.GET("", d.followUpHandler.ListFollowUps)
			followUps.GET("/lead/:leadId", d.followUpHandler.ListFollowUpsByLead)
			followUps.GET("/:id", d.followUpHandler.GetFollowUp)
			followUps.PATCH("/:id", d.followUpHandler.UpdateFollowUp)
			followUps.DELETE("/:id", d.followUpHandler.DeleteFollowUp)
		}

		// Inquiry routes: anyone may ask, staff answer
		inquiries := v1.Group("/inquiries")
		{
			inquiries.POST("", idempotent, d.inquiryHandler.CreateInquiry)

			staff := inquiries.Group("", d.authMiddleware)
			staff.GET("", d.inquiryHandler.ListInquiries)
			staff.GET("/status/:status", d.inquiryHandler.ListInquiriesByStatus)
			staff.GET("/:id", d.inquiryHandler.GetInquiry)
			staff.PATCH("/:id", d.inquiryHandler.UpdateInquiry)
			staff.DELETE("/:id", d.inquiryHandler.DeleteInquiry)
		}
	}
}
