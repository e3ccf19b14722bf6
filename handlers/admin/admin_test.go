package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_EMAIL", "admin@engineerskenya.co.ke")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&models.Application{}, &models.ContactInquiry{}, &models.Subscriber{}, &models.Payment{}); err != nil {
		t.Fatal(err)
	}
	utils.PortalDB = db
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.POST("/admin/login", Login)
	protected := r.Group("/admin")
	protected.Use(AuthMiddleware())
	protected.GET("/stats", GetStats)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	setupTest(t)
	r := newRouter()

	w := postLogin(r, `{"email":"admin@engineerskenya.co.ke","password":"super-secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token == "" {
		t.Fatal("no token in response")
	}

	email, err := utils.ExtractAdminFromHeader("Bearer " + resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if email != "admin@engineerskenya.co.ke" {
		t.Errorf("email = %q", email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	setupTest(t)
	r := newRouter()

	w := postLogin(r, `{"email":"admin@engineerskenya.co.ke","password":"guess"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestLogin_WrongEmail(t *testing.T) {
	setupTest(t)
	r := newRouter()

	w := postLogin(r, `{"email":"intruder@example.com","password":"super-secret"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	setupTest(t)
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGetStats(t *testing.T) {
	setupTest(t)
	r := newRouter()

	utils.PortalDB.Create(&models.Application{FullName: "A", Email: "a@example.com", Phone: "1", ServiceType: "s", Status: models.ApplicationStatusPending})
	utils.PortalDB.Create(&models.ContactInquiry{FullName: "B", Email: "b@example.com", Subject: "hi", Message: "hello", Status: models.InquiryStatusNew})
	utils.PortalDB.Create(&models.Subscriber{Email: "c@example.com", IsActive: true})
	utils.PortalDB.Create(&models.Payment{CheckoutRequestID: "ws_1", PhoneNumber: "254712345678", Amount: 100, Status: models.PaymentStatusSuccess})
	utils.PortalDB.Create(&models.Payment{CheckoutRequestID: "ws_2", PhoneNumber: "254712345678", Amount: 50, Status: models.PaymentStatusFailed})

	token, err := utils.GenerateAdminToken("admin@engineerskenya.co.ke")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var stats struct {
		TotalApplications   int64   `json:"totalApplications"`
		PendingApplications int64   `json:"pendingApplications"`
		TotalInquiries      int64   `json:"totalInquiries"`
		TotalSubscribers    int64   `json:"totalSubscribers"`
		TotalPayments       int64   `json:"totalPayments"`
		RevenueTotal        float64 `json:"revenueTotal"`
	}
	json.Unmarshal(w.Body.Bytes(), &stats)

	if stats.TotalApplications != 1 || stats.PendingApplications != 1 {
		t.Errorf("applications = %d/%d", stats.TotalApplications, stats.PendingApplications)
	}
	if stats.TotalInquiries != 1 || stats.TotalSubscribers != 1 {
		t.Errorf("inquiries = %d, subscribers = %d", stats.TotalInquiries, stats.TotalSubscribers)
	}
	if stats.TotalPayments != 2 {
		t.Errorf("payments = %d, want 2", stats.TotalPayments)
	}
	if stats.RevenueTotal != 100 {
		t.Errorf("revenue = %v, want 100 (failed payments excluded)", stats.RevenueTotal)
	}
}
