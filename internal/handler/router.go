package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"aquaflow/internal/domain/user"
	"aquaflow/internal/handler/api"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Subscription *api.SubscriptionHandler
	Installation *api.InstallationHandler
	Usage        *api.UsageHandler
	EcoImpact    *api.EcoImpactHandler
	Reminder     *api.ReminderHandler
	Support      *api.SupportHandler
	Referral     *api.ReferralHandler
	Payment      *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodPatch, Path: "/profile", Handler: h.Auth.UpdateProfile},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Subscription.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Subscription.Create},
				{Method: http.MethodPost, Path: "/subscribe", Handler: h.Subscription.Subscribe},
			})
		}

		installations := apiGroup.Group("/installations")
		installations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(installations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Installation.List},
				{Method: http.MethodPost, Path: "", Handler: h.Installation.Schedule},
			})
		}

		waterUsage := apiGroup.Group("/water-usage")
		waterUsage.Use(authMiddleware.RequireAuth())
		{
			addRoutes(waterUsage, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Usage.List},
				{Method: http.MethodPost, Path: "", Handler: h.Usage.Record},
			})
		}

		ecoImpact := apiGroup.Group("/eco-impact")
		ecoImpact.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ecoImpact, []route{
				{Method: http.MethodGet, Path: "", Handler: h.EcoImpact.Get},
				{Method: http.MethodPost, Path: "/calculate", Handler: h.EcoImpact.Calculate},
			})
		}

		reminders := apiGroup.Group("/reminders")
		reminders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reminders, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reminder.List},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reminder.UpdateStatus},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reminders/pending", Handler: h.Reminder.ListPending},
			})
		}

		supportTickets := apiGroup.Group("/support-tickets")
		supportTickets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(supportTickets, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Support.List},
				{Method: http.MethodPost, Path: "", Handler: h.Support.Create},
			})
		}

		referrals := apiGroup.Group("/referrals")
		referrals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(referrals, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Referral.GetSummary},
				{Method: http.MethodPost, Path: "", Handler: h.Referral.Redeem},
			})
		}

		rewards := apiGroup.Group("/rewards")
		rewards.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rewards, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Referral.ListRewards},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/intent", Handler: h.Payment.CreateIntent},
			})
		}

		zaincash := apiGroup.Group("/zaincash")
		{
			// Callback arrives from the gateway without a session.
			addRoutes(zaincash, []route{
				{Method: http.MethodPost, Path: "/callback", Handler: h.Payment.ZainCashCallback},
			})

			zcAuth := zaincash.Group("")
			zcAuth.Use(authMiddleware.RequireAuth())
			addRoutes(zcAuth, []route{
				{Method: http.MethodPost, Path: "/initiate", Handler: h.Payment.ZainCashInitiate},
				{Method: http.MethodGet, Path: "/verify/:transactionId", Handler: h.Payment.ZainCashVerify},
			})
		}
	}

	uploads := engine.Group("/uploads")
	uploads.Use(authMiddleware.RequireAuth())
	uploads.Static("", cfg.Upload.Dir)
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
