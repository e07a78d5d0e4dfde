package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taxibook/internal/handler"
	"taxibook/internal/service"
)

// ──────────────────────────────────────────────
// 4. LISTING RESPONSE SHAPES
// ──────────────────────────────────────────────

// The SPA iterates over listings directly, so an empty listing must be [] and
// never null.
func TestEmptyListings_SerializeAsEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userRepo := NewMockUserRepository()
	bookingRepo := NewMockBookingRepository()

	userService := service.NewUserService(userRepo, nil, newTestTokenManager(), testBcryptCost)
	bookingService := service.NewBookingService(bookingRepo, userRepo, nil)

	userHandler := handler.NewUserHandler(userService, userRepo)
	bookingHandler := handler.NewBookingHandler(bookingService)

	router := gin.New()
	router.GET("/api/users", userHandler.GetAll)
	router.GET("/api/bookings", bookingHandler.GetAll)

	for _, path := range []string{"/api/users", "/api/bookings"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected status 200, got %d", path, w.Code)
		}

		body := strings.TrimSpace(w.Body.String())
		if body != "[]" {
			t.Errorf("GET %s: expected empty array body, got %q", path, body)
		}
	}
}
