package routes

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/handler"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	employeeHandler *handler.EmployeeHandler,
	questionHandler *handler.QuestionHandler,
	questionnaireHandler *handler.QuestionnaireHandler,
	evaluationHandler *handler.EvaluationHandler,
	evaluatorHandler *handler.EvaluatorHandler,
	dashboardHandler *handler.DashboardHandler,
	adminHandler *handler.AdminHandler,
) {
	api := router.Group("/api")

	// Funcionários (RH)
	employees := api.Group("/funcionarios")
	{
		employees.GET("", employeeHandler.List)
		employees.GET("/total", employeeHandler.Total)
		employees.GET("/estatisticas", employeeHandler.Stats)
		employees.GET("/:cpf", employeeHandler.Get)
		employees.POST("", employeeHandler.Create)
		employees.PUT("/:cpf", employeeHandler.Update)
		employees.DELETE("/:cpf", employeeHandler.Delete)

		employees.GET("/:cpf/classificacoes", employeeHandler.Classifications)
		employees.GET("/:cpf/avaliacoes", employeeHandler.Evaluations)
		employees.GET("/:cpf/treinamentos", employeeHandler.Trainings)
	}
	api.GET("/departamentos", employeeHandler.Sectors)

	// Perguntas
	questions := api.Group("/perguntas")
	{
		questions.GET("", questionHandler.List)
		questions.GET("/:id", questionHandler.Get)
		questions.POST("", questionHandler.Create)
		questions.PUT("/:id", questionHandler.Update)
		questions.DELETE("/:id", questionHandler.Delete)
	}
	api.GET("/categorias", questionnaireHandler.Categories)
	api.GET("/questoes/:id/respostas", evaluationHandler.ResponsesByQuestion)

	// Questionários
	questionnaires := api.Group("/questionarios")
	{
		questionnaires.GET("", questionnaireHandler.List)
		questionnaires.GET("/:id", questionnaireHandler.Get)
		questionnaires.POST("", questionnaireHandler.Create)
		questionnaires.PUT("/:id", questionnaireHandler.Update)
		questionnaires.DELETE("/:id", questionnaireHandler.Delete)
		questionnaires.GET("/:id/grafico-respostas", evaluationHandler.ResponsesByQuestionnaire)
	}
	api.GET("/classificacoes", questionnaireHandler.Classifications)

	// Avaliações
	evaluations := api.Group("/avaliacoes")
	{
		evaluations.GET("", evaluationHandler.List)
		evaluations.POST("", evaluationHandler.Create)
		evaluations.POST("/respostas", evaluationHandler.SaveResponse)
		evaluations.GET("/:id", evaluationHandler.Get)
		evaluations.GET("/:id/grafico-respostas", evaluationHandler.ResponsesByEvaluation)
		evaluations.PUT("/:id", evaluationHandler.UpdateConfig)
		evaluations.PUT("/:id/status", evaluationHandler.UpdateStatus)
		evaluations.DELETE("/:id", evaluationHandler.Delete)
	}

	// Avaliadores e treinamentos
	evaluators := api.Group("/avaliadores")
	{
		evaluators.GET("", evaluatorHandler.List)
		evaluators.GET("/:cpf", evaluatorHandler.Get)
		evaluators.GET("/:cpf/certificados", evaluatorHandler.Certificates)
	}
	api.GET("/treinamentos", evaluatorHandler.Trainings)
	links := api.Group("/funcionario-treinamento")
	{
		links.POST("", evaluatorHandler.CreateLink)
		links.PUT("", evaluatorHandler.UpdateLink)
		links.DELETE("", evaluatorHandler.DeleteLink)
	}

	// Dashboard
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/estatisticas", dashboardHandler.Stats)
		dashboard.GET("/avaliacoes-mes", dashboardHandler.EvaluationsByMonth)
		dashboard.GET("/avaliacoes-tempo", dashboardHandler.EvaluationsByYear)
		dashboard.GET("/status-avaliacoes", dashboardHandler.StatusDistribution)
		dashboard.GET("/atividades-recentes", dashboardHandler.RecentActivities)
		dashboard.GET("/questionarios-usados", dashboardHandler.TopQuestionnaires)
		dashboard.GET("/avaliacoes-por-questionario", dashboardHandler.QuestionnaireShares)
		dashboard.GET("/avaliacoes-setor", dashboardHandler.SectorStats)
		dashboard.GET("/avaliadores-por-setor", dashboardHandler.EvaluatorSectorStats)
		dashboard.GET("/respostas-frequencia", dashboardHandler.ResponseFrequencies)
		dashboard.GET("/pontos-por-data", dashboardHandler.DailyPoints)
		dashboard.GET("/motivos-saida", dashboardHandler.ExitReasons)
		dashboard.GET("/rating-stats", dashboardHandler.RatingStats)
		dashboard.GET("/taxa-conclusao", dashboardHandler.CompletionRate)
	}

	// Admin
	admin := api.Group("/admin")
	{
		admin.DELETE("/limpar-banco", adminHandler.PurgeDatabase)
	}
}
