package routes

import (
	"net/http"
	"strings"

	"WANDERINDIA_BACK-END/internal/config"
	"WANDERINDIA_BACK-END/internal/handlers"
	"WANDERINDIA_BACK-END/internal/middleware"
)

// Handlers bundles everything SetupRoutes needs to wire
type Handlers struct {
	Health       *handlers.HealthHandler
	Planner      *handlers.PlannerHandler
	Trips        *handlers.TripsHandler
	Destinations *handlers.DestinationsHandler
	Reviews      *handlers.ReviewsHandler
	Vlogs        *handlers.VlogsHandler
	Contact      *handlers.ContactHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(h Handlers, jwtCfg *config.JWTConfig) {
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, jwtCfg)
	}

	// Health check routes
	http.HandleFunc("/healthz", h.Health.HealthCheck)
	http.HandleFunc("/livez", h.Health.LivenessCheck)
	http.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// Trip planning routes
	http.HandleFunc("/api/planner/generate", auth(h.Planner.GenerateItinerary))
	http.HandleFunc("/api/trips", auth(h.Trips.Trips))
	http.HandleFunc("/api/trips/", auth(h.Trips.TripByID))

	// Destination routes; /api/destinations/{id}/reviews belongs to reviews
	http.HandleFunc("/api/destinations", h.Destinations.List)
	http.HandleFunc("/api/destinations/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/reviews") {
			h.Reviews.ListByDestination(w, r)
			return
		}
		h.Destinations.Detail(w, r)
	})

	// Review routes
	http.HandleFunc("/api/reviews", auth(h.Reviews.CreateReview))
	http.HandleFunc("/api/reviews/", auth(h.Reviews.ReviewByID))

	// Vlog routes; likes require identity, reading does not
	http.HandleFunc("/api/vlogs", h.Vlogs.List)
	http.HandleFunc("/api/vlogs/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/like") {
			auth(h.Vlogs.Like)(w, r)
			return
		}
		h.Vlogs.VlogByID(w, r)
	})

	// Contact form
	http.HandleFunc("/api/contact", h.Contact.Submit)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("WanderIndia backend is running."))
}
