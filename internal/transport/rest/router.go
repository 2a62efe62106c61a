package rest

import (
	"net/http"

	"github.com/heartmarshall/wordforge-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Words    *WordHandler
	Quiz     *QuizHandler
	Daily    *DailyHandler
	Content  *ContentHandler
	Progress *ProgressHandler
	Auth     *AuthHandler
	Admin    *AdminHandler
	Version  string
}

// NewRouter registers all routes. Global middleware (request id, logging,
// auth, rate limiting) is applied by the caller around the returned handler.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	authed := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAuth()(fn) }
	admin := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAdmin()(fn) }

	mux.HandleFunc("GET /{$}", index(h.Version))
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("GET /words", h.Words.List)
	mux.HandleFunc("GET /words/search", h.Words.Search)
	mux.HandleFunc("GET /words/{id}", h.Words.Get)
	mux.Handle("POST /words/{id}/learned", authed(h.Words.MarkLearned))

	mux.HandleFunc("POST /quiz/generate", h.Quiz.Generate)
	mux.HandleFunc("POST /quiz/submit", h.Quiz.Submit)

	mux.HandleFunc("GET /daily/quote", h.Daily.Quote)
	mux.HandleFunc("GET /daily/fact", h.Daily.Fact)
	mux.HandleFunc("GET /daily/word", h.Words.WordOfTheDay)

	mux.HandleFunc("POST /stories/generate", h.Content.GenerateStory)
	mux.HandleFunc("GET /stories", h.Content.ListStories)
	mux.HandleFunc("POST /grammar/lesson", h.Content.GenerateLesson)
	mux.HandleFunc("GET /grammar/lesson/{id}", h.Content.GetLesson)
	mux.HandleFunc("GET /grammar/topics", h.Content.GrammarTopics)
	mux.HandleFunc("POST /pronunciation/guide", h.Content.PronunciationGuide)
	mux.HandleFunc("GET /idioms", h.Content.ListIdioms)
	mux.HandleFunc("POST /games/word-association", h.Content.WordAssociation)
	mux.HandleFunc("POST /conversation/starters", h.Content.ConversationStarters)

	mux.HandleFunc("GET /widget/word/next", h.Words.NextForWidget)

	mux.Handle("GET /progress", authed(h.Progress.Overview))

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.Handle("GET /auth/profile", authed(h.Auth.Profile))
	mux.Handle("PUT /auth/profile", authed(h.Auth.UpdateProfile))

	mux.Handle("POST /admin/generate-words", admin(h.Admin.GenerateWords))
	mux.Handle("POST /admin/generate-daily-content", admin(h.Admin.GenerateDailyContent))
	mux.Handle("POST /admin/generate-idioms", admin(h.Admin.GenerateIdioms))
	mux.Handle("POST /admin/cleanup", admin(h.Admin.Cleanup))
	mux.Handle("GET /admin/stats", admin(h.Admin.Stats))

	return mux
}

type indexResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

var publicEndpoints = []string{
	"GET /words", "GET /words/search", "GET /words/{id}", "POST /words/{id}/learned",
	"POST /quiz/generate", "POST /quiz/submit",
	"GET /daily/quote", "GET /daily/fact", "GET /daily/word",
	"POST /stories/generate", "GET /stories",
	"POST /grammar/lesson", "GET /grammar/topics",
	"POST /pronunciation/guide", "GET /idioms",
	"POST /games/word-association", "POST /conversation/starters",
	"GET /widget/word/next", "GET /progress",
	"POST /auth/register", "POST /auth/login", "GET /auth/profile", "PUT /auth/profile",
}

func index(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, indexResponse{
			Name:      "wordforge",
			Version:   version,
			Endpoints: publicEndpoints,
		})
	}
}
