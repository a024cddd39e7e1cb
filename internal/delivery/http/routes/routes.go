package routes

import (
	"skill-matrix/internal/config"
	"skill-matrix/internal/database"
	"skill-matrix/internal/delivery/http/handler"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/jwt"
	"skill-matrix/internal/repository"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers onto the app.
// Read endpoints are public; /admin/* requires an ADMIN bearer token.
func Register(app *fiber.App, cfg config.Config, db database.DB) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	robotRepo := repository.NewPostgresRobotRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	employeeRepo := repository.NewPostgresEmployeeRepository(db)
	factRepo := repository.NewPostgresSkillFactRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	matrixUC := usecase.NewMatrixUsecase(employeeRepo, factRepo)
	filterUC := usecase.NewFilterUsecase(robotRepo, applicationRepo, factRepo)
	searchUC := usecase.NewSearchUsecase(factRepo, employeeRepo)
	adminUC := usecase.NewAdminUsecase(applicationRepo, employeeRepo, factRepo)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)

	handler.NewHealthHandler().RegisterRoutes(app)
	handler.NewEmployeeHandler(matrixUC).RegisterRoutes(app)
	handler.NewFilterHandler(filterUC).RegisterRoutes(app)
	handler.NewSearchHandler(searchUC).RegisterRoutes(app)

	authGroup := app.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	adminGroup := app.Group("/admin", authMw.Middleware(), authMw.RequireAdmin())
	handler.NewAdminHandler(adminUC).RegisterRoutes(adminGroup)
}
