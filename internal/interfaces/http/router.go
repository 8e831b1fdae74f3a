package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/contrib/websocket"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/analytics"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/auth"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/leave"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/notification"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/trip"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Google      *auth.GoogleOAuth
	NotifUC     *notification.UseCase
	TripUC      *trip.UseCase
	LeaveUC     *leave.UseCase
	DashboardUC *analytics.DashboardUseCase
	Hub         *ws.Hub
	JWTSecret   string
	AppEnv      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Google, deps.AppEnv)
	notifHandler := NewNotificationHandler(deps.NotifUC)
	tripHandler := NewTripHandler(deps.TripUC)
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	dashHandler := NewDashboardHandler(deps.DashboardUC)

	// Auth (público)
	user := app.Group("/user")
	user.Post("/login", authHandler.Login)
	user.Post("/register-super-admin", authHandler.RegisterSuperAdmin)
	user.Post("/forgot-password", authHandler.ForgotPassword)
	user.Post("/reset-password/:token", authHandler.ResetPassword)
	user.Get("/validate-driver/:token/:action", authHandler.ValidateDriver)
	user.Post("/logout", authHandler.Logout)

	// Google OAuth (público)
	googleGroup := app.Group("/admin/auth/google")
	googleGroup.Get("/", authHandler.GoogleRedirect)
	googleGroup.Get("/callback", authHandler.GoogleCallback)

	// Rutas protegidas (token en header Bearer o cookie de sesión)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invitación de choferes (protegido, manager o super admin)
	protected.Post("/user/invite-driver",
		RequireRole(entity.RoleManager, entity.RoleSuperAdmin), authHandler.InviteDriver)

	// Notificaciones (protegido)
	notifs := protected.Group("/user/notifications")
	notifs.Get("/", notifHandler.List)
	notifs.Put("/:id/seen", notifHandler.MarkSeen)
	notifs.Delete("/:id", notifHandler.Delete)

	// Viajes (protegido)
	trips := protected.Group("/trip")
	trips.Post("/", RequireRole(entity.RoleManager), tripHandler.Assign)
	trips.Get("/", RequireRole(entity.RoleDriver), tripHandler.ListMine)
	trips.Get("/validation/:tripId", RequireRole(entity.RoleSuperAdmin), tripHandler.Validate)

	// Congés (protegido)
	conges := protected.Group("/conge")
	conges.Post("/", RequireRole(entity.RoleDriver), leaveHandler.Request)
	conges.Get("/", RequireRole(entity.RoleDriver), leaveHandler.ListMine)
	conges.Get("/validate/:token/:action",
		RequireRole(entity.RoleManager, entity.RoleSuperAdmin), leaveHandler.Validate)

	// Dashboard (protegido)
	protected.Get("/dashboard/stats", dashHandler.Stats)

	// Canal websocket de notificaciones en vivo
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(deps.Hub.Handler()))

	// Archivos subidos (avatares, justificantes)
	app.Static("/uploads", "./uploads")
}
