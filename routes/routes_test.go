package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"potholetrack/database"
	"potholetrack/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	store, err := database.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	router := gin.New()
	detector := services.NewDetectorService("http://localhost:0", t.TempDir())
	geocoder := services.NewGeocodeService("http://localhost:0", "")
	SetupRoutes(router, store, detector, geocoder)
	return router
}

func perform(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("%s %s: response is not JSON: %s", method, path, w.Body.String())
	}
	return w, envelope
}

func login(t *testing.T, router *gin.Engine, path string, body interface{}) string {
	t.Helper()
	w, envelope := perform(t, router, http.MethodPost, path, "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", path, w.Code, w.Body.String())
	}
	token, _ := envelope["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response", path)
	}
	return token
}

func demoUserToken(t *testing.T, router *gin.Engine) string {
	return login(t, router, "/api/login", map[string]string{"email": "user@demo.com", "password": "user123"})
}

func adminToken(t *testing.T, router *gin.Engine) string {
	return login(t, router, "/api/admin/login", map[string]string{"username": "admin", "password": "admin123"})
}

func submitBody() map[string]interface{} {
	return map[string]interface{}{
		"userId":      1,
		"location":    "Main St",
		"street":      "5th Ave",
		"description": "deep pothole",
		"count":       3,
		"severity":    "high",
		"confidence":  92,
		"image":       "http://x/img.jpg",
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := perform(t, router, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK || envelope["success"] != true {
		t.Errorf("status %d body %v", w.Code, envelope)
	}
}

func TestSignupAndDuplicate(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]string{"name": "Jane", "email": "jane@example.com", "phone": "555", "password": "hunter22"}
	w, envelope := perform(t, router, http.MethodPost, "/api/signup", "", body)
	if w.Code != http.StatusOK || envelope["success"] != true {
		t.Fatalf("signup: status %d body %v", w.Code, envelope)
	}
	if strings.Contains(w.Body.String(), "hunter22") {
		t.Error("response leaked the password")
	}

	w, envelope = perform(t, router, http.MethodPost, "/api/signup", "", body)
	if w.Code != http.StatusBadRequest || envelope["success"] != false {
		t.Errorf("duplicate signup: status %d body %v", w.Code, envelope)
	}
	if envelope["message"] != "Email already registered" {
		t.Errorf("message = %v", envelope["message"])
	}
}

func TestLoginFailure(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := perform(t, router, http.MethodPost, "/api/login", "",
		map[string]string{"email": "user@demo.com", "password": "wrong"})
	if w.Code != http.StatusUnauthorized || envelope["success"] != false {
		t.Errorf("status %d body %v", w.Code, envelope)
	}
	if envelope["message"] != "Invalid email or password" {
		t.Errorf("message = %v", envelope["message"])
	}
}

func TestAdminSignupDomain(t *testing.T) {
	router := newTestRouter(t)
	t.Setenv("ADMIN_EMAIL_DOMAIN", "@city.gov")

	w, _ := perform(t, router, http.MethodPost, "/api/admin/signup", "", map[string]string{
		"username": "roadworks", "email": "roadworks@gmail.com", "department": "Roads", "password": "secret99",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("outside-domain signup: status %d", w.Code)
	}

	w, envelope := perform(t, router, http.MethodPost, "/api/admin/signup", "", map[string]string{
		"username": "roadworks", "email": "roadworks@city.gov", "department": "Roads", "password": "secret99",
	})
	if w.Code != http.StatusOK || envelope["success"] != true {
		t.Errorf("in-domain signup: status %d body %v", w.Code, envelope)
	}
}

func TestReportEndpointsRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	w, _ := perform(t, router, http.MethodPost, "/api/reports", "", submitBody())
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated submit: status %d, want 401", w.Code)
	}

	// A citizen token is not enough for admin triage routes
	token := demoUserToken(t, router)
	w, _ = perform(t, router, http.MethodGet, "/api/reports", token, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("citizen on admin route: status %d, want 403", w.Code)
	}
}

func TestSubmitListAndResolveFlow(t *testing.T) {
	router := newTestRouter(t)
	userToken := demoUserToken(t, router)

	// Unknown user id
	bad := submitBody()
	bad["userId"] = 99
	w, envelope := perform(t, router, http.MethodPost, "/api/reports", userToken, bad)
	if w.Code != http.StatusNotFound || envelope["message"] != "User not found" {
		t.Errorf("unknown user: status %d body %v", w.Code, envelope)
	}

	// Missing required field
	incomplete := submitBody()
	incomplete["street"] = ""
	w, _ = perform(t, router, http.MethodPost, "/api/reports", userToken, incomplete)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing street: status %d, want 400", w.Code)
	}

	// Valid submission
	w, envelope = perform(t, router, http.MethodPost, "/api/reports", userToken, submitBody())
	if w.Code != http.StatusOK || envelope["success"] != true {
		t.Fatalf("submit: status %d body %v", w.Code, envelope)
	}
	report := envelope["report"].(map[string]interface{})
	if report["id"].(float64) != 1 || report["status"] != "pending" {
		t.Errorf("report = %v", report)
	}

	// Citizen listing
	w, envelope = perform(t, router, http.MethodGet, "/api/reports/user/1", userToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list by user: status %d", w.Code)
	}
	if reports := envelope["reports"].([]interface{}); len(reports) != 1 {
		t.Errorf("user has %d reports, want 1", len(reports))
	}

	// Admin triage
	admin := adminToken(t, router)
	w, envelope = perform(t, router, http.MethodPut, "/api/reports/1", admin, map[string]string{"status": "resolved"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status: status %d body %v", w.Code, envelope)
	}
	if updated := envelope["report"].(map[string]interface{}); updated["status"] != "resolved" {
		t.Errorf("status = %v, want resolved", updated["status"])
	}

	w, envelope = perform(t, router, http.MethodPut, "/api/reports/42", admin, map[string]string{"status": "resolved"})
	if w.Code != http.StatusNotFound || envelope["message"] != "Report not found" {
		t.Errorf("unknown report: status %d body %v", w.Code, envelope)
	}

	w, _ = perform(t, router, http.MethodPut, "/api/reports/1", admin, map[string]string{"status": "archived"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status value: status %d, want 400", w.Code)
	}

	// Statistics reflect the resolved report
	w, envelope = perform(t, router, http.MethodGet, "/api/statistics", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("statistics: status %d", w.Code)
	}
	stats := envelope["statistics"].(map[string]interface{})
	if stats["totalReports"].(float64) != 1 || stats["resolvedReports"].(float64) != 1 ||
		stats["pendingReports"].(float64) != 0 || stats["totalUsers"].(float64) != 1 {
		t.Errorf("statistics = %v", stats)
	}
	severity := stats["severityStats"].(map[string]interface{})
	if severity["high"].(float64) != 1 {
		t.Errorf("severityStats = %v", severity)
	}
}

func TestUsersListStripsPasswords(t *testing.T) {
	router := newTestRouter(t)
	admin := adminToken(t, router)

	w, envelope := perform(t, router, http.MethodGet, "/api/users", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("users: status %d", w.Code)
	}
	if strings.Contains(strings.ToLower(w.Body.String()), "password") {
		t.Error("users payload contains a password field")
	}
	if users := envelope["users"].([]interface{}); len(users) != 1 {
		t.Errorf("users = %d, want 1 seeded", len(users))
	}
}

func TestTimeSeriesEndpoint(t *testing.T) {
	router := newTestRouter(t)
	admin := adminToken(t, router)

	w, envelope := perform(t, router, http.MethodGet, "/api/statistics/timeseries", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("timeseries: status %d", w.Code)
	}
	if series := envelope["series"].([]interface{}); len(series) != 7 {
		t.Errorf("series has %d entries, want 7", len(series))
	}

	w, _ = perform(t, router, http.MethodGet, "/api/statistics/timeseries?days=0", admin, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("days=0: status %d, want 400", w.Code)
	}
}

func TestSeverityEndpoint(t *testing.T) {
	router := newTestRouter(t)
	admin := adminToken(t, router)

	w, envelope := perform(t, router, http.MethodGet, "/api/statistics/severity", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("severity: status %d", w.Code)
	}
	if buckets := envelope["distribution"].([]interface{}); len(buckets) != 4 {
		t.Errorf("distribution has %d buckets, want 4", len(buckets))
	}
}
