package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ecoleplus/drivingschool/api"
	"github.com/ecoleplus/drivingschool/config"
	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/service/news"
	"github.com/ecoleplus/drivingschool/internal/service/registration"
	"github.com/ecoleplus/drivingschool/internal/service/sessions"
	"github.com/ecoleplus/drivingschool/internal/service/tickets"
	"github.com/ecoleplus/drivingschool/internal/service/users"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Services bundles everything the HTTP surface needs.
type Services struct {
	Tokens        *auth.TokenManager
	Users         users.UserUseCase
	Sessions      sessions.SessionUseCase
	News          news.NewsUseCase
	Tickets       tickets.TicketUseCase
	Registrations registration.RegistrationUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, svcs Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, svcs),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires all handlers onto a gin engine.
func NewRouter(cfg *config.Config, svcs Services) *gin.Engine {
	engine := gin.Default()

	authenticated := api.Authenticate(svcs.Tokens)

	root := engine.Group("/api")

	api.NewAuthHandler(svcs.Users).Register(root.Group("/auth"))
	api.NewUserHandler(svcs.Users).Register(root.Group("/users", authenticated))
	api.NewSessionHandler(svcs.Sessions).Register(root.Group("/sessions", authenticated))
	api.NewNewsHandler(svcs.News).Register(root.Group("/news", authenticated))
	api.NewTicketHandler(svcs.Tickets).Register(root.Group("/tickets", authenticated))

	registrations := api.NewRegistrationHandler(svcs.Registrations)
	registrations.Register(
		root.Group("/registrations"),
		root.Group("/admin/registrations", authenticated),
	)

	if cfg.HTTP.OpenAPIFile != "" {
		engine.StaticFile("/openapi.json", cfg.HTTP.OpenAPIFile)
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/openapi.json"),
		)))
	}

	return engine
}
