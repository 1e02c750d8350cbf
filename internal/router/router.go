package router

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/cinefeed/cinefeed/internal/auth"
	authrepo "github.com/cinefeed/cinefeed/internal/auth/repo"
	"github.com/cinefeed/cinefeed/internal/comment"
	commentrepo "github.com/cinefeed/cinefeed/internal/comment/repo"
	"github.com/cinefeed/cinefeed/internal/message"
	messagerepo "github.com/cinefeed/cinefeed/internal/message/repo"
	"github.com/cinefeed/cinefeed/internal/movie"
	"github.com/cinefeed/cinefeed/internal/rating"
	ratingrepo "github.com/cinefeed/cinefeed/internal/rating/repo"
	"github.com/cinefeed/cinefeed/internal/token"
	"github.com/cinefeed/cinefeed/internal/user"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

// RegisterRoutes wires every handler onto the standard library's
// http.ServeMux and wraps the mux with the shared middleware chain.
func RegisterRoutes(logger *zap.SugaredLogger, db *sqlx.DB, docs *mongo.Database, tokens *token.Manager) http.Handler {
	mux := http.NewServeMux()
	authed := AuthMiddleware(tokens, logger)

	// health
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		utilities.WriteJSON(w, http.StatusOK, map[string]string{"message": "All up and running !!"})
	})

	// relational accounts and password changes
	userSvc := user.NewUserService(db, nil, nil)
	userHandler := user.NewHandler(userSvc, tokens, logger)
	mux.HandleFunc("POST /users/register", userHandler.Register)
	mux.HandleFunc("POST /users/login", userHandler.Login)
	mux.HandleFunc("PUT /profile", authed(userHandler.EditPassword))
	mux.HandleFunc("POST /profile", authed(userHandler.Logout))

	// document-store accounts
	messageRepo := messagerepo.NewMessageRepo(docs)
	authSvc := auth.NewAuthService(authrepo.NewAccountRepo(docs), messageRepo)
	authHandler := auth.NewHandler(authSvc, tokens, logger)
	mux.HandleFunc("POST /auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /auth/login", authHandler.Signin)
	mux.HandleFunc("GET /auth/me", authed(authHandler.Me))
	mux.HandleFunc("GET /auth/logout", authed(authHandler.Logout))

	// movie catalog
	movieSvc := movie.NewMovieService(db, nil)
	movieHandler := movie.NewHandler(movieSvc, logger)
	mux.HandleFunc("GET /movies", movieHandler.List)
	mux.HandleFunc("GET /movies/top", movieHandler.TopRated)
	mux.HandleFunc("GET /movies/me", authed(movieHandler.Seen))

	// ratings feed the movie aggregate
	ratingSvc := rating.NewRatingService(ratingrepo.NewRatingRepo(docs), movieSvc)
	ratingHandler := rating.NewHandler(ratingSvc, logger)
	mux.HandleFunc("POST /ratings/{movieId}", authed(ratingHandler.Add))

	// comments
	commentSvc := comment.NewCommentService(commentrepo.NewCommentRepo(docs))
	commentHandler := comment.NewHandler(commentSvc, logger)
	mux.HandleFunc("GET /comments/{movie_id}", authed(commentHandler.GetByMovie))
	mux.HandleFunc("POST /comments/{movie_id}", authed(commentHandler.Add))

	// messages
	messageSvc := message.NewMessageService(messageRepo)
	messageHandler := message.NewHandler(messageSvc, logger)
	mux.HandleFunc("GET /messages", authed(messageHandler.List))
	mux.HandleFunc("POST /messages/add/message", authed(messageHandler.Add))
	mux.HandleFunc("PUT /messages/edit/{messageId}", authed(messageHandler.Edit))
	mux.HandleFunc("DELETE /messages/delete/{messageId}", authed(messageHandler.Delete))
	mux.HandleFunc("GET /messages/{messageId}", authed(messageHandler.GetByID))

	// JSON 404 fallback for everything unmatched
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utilities.WriteJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]string{"message": "Not Found"},
		})
	})

	handler := LoggingMiddleware(logger)(SecurityHeadersMiddleware()(ValidatorMiddleware()(mux)))
	return handler
}
