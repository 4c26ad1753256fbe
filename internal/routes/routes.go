package routes

import (
	"net/http"

	"techtomorrow/internal/config"
	"techtomorrow/internal/handlers"
	"techtomorrow/internal/middleware"
	"techtomorrow/internal/models"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	articleH *handlers.ArticleHandler,
	submissionH *handlers.SubmissionHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	jwtAuth := middleware.JWTAuth(cfg.JWTSecret)
	adminOnly := middleware.OnlyRole(models.RoleAdmin)
	canSubmit := middleware.AnyRole(models.RoleAuthor, models.RoleAdmin)

	// --- Публичные маршруты ---
	router.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/articles", articleH.GetAll).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(jwtAuth)
	protected.Use(middleware.AdminFastLane)

	protected.Handle("/articles", adminOnly(http.HandlerFunc(articleH.Create))).Methods("POST")
	protected.Handle("/articles/{id:[0-9]+}", adminOnly(http.HandlerFunc(articleH.Delete))).Methods("DELETE")

	protected.HandleFunc("/submissions/mine", submissionH.ListMine).Methods("GET")
	protected.Handle("/submissions", canSubmit(http.HandlerFunc(submissionH.Submit))).Methods("POST")
	protected.Handle("/submissions", adminOnly(http.HandlerFunc(submissionH.List))).Methods("GET")
	protected.Handle("/submissions/{id:[0-9]+}/approve", adminOnly(http.HandlerFunc(submissionH.Approve))).Methods("POST")
	protected.Handle("/submissions/{id:[0-9]+}", adminOnly(http.HandlerFunc(submissionH.Reject))).Methods("DELETE")

	router.Handle("/users",
		jwtAuth(middleware.AdminFastLane(adminOnly(http.HandlerFunc(authHandler.GetUsers)))),
	).Methods("GET")
}
