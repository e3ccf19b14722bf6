package contact

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&models.ContactInquiry{}); err != nil {
		t.Fatal(err)
	}
	utils.PortalDB = db
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.POST("/contact", SubmitInquiry)
	r.PUT("/admin/inquiries/:id/status", UpdateInquiryStatus)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitInquiry(t *testing.T) {
	setupTest(t)
	r := newRouter()

	body := `{"name":"John Otieno","email":"john@example.com","subject":"Site survey","message":"Need a quote for a site survey in Kisumu."}`
	w := doJSON(r, "POST", "/contact", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var inquiry models.ContactInquiry
	if err := utils.PortalDB.Where("email = ?", "john@example.com").First(&inquiry).Error; err != nil {
		t.Fatal(err)
	}
	if inquiry.Status != models.InquiryStatusNew {
		t.Errorf("status = %q, want new", inquiry.Status)
	}
	if inquiry.FullName != "John Otieno" {
		t.Errorf("full_name = %q", inquiry.FullName)
	}
}

func TestSubmitInquiry_MissingFields(t *testing.T) {
	setupTest(t)
	r := newRouter()

	w := doJSON(r, "POST", "/contact", `{"name":"John","email":"john@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateInquiryStatus(t *testing.T) {
	setupTest(t)
	r := newRouter()

	inquiry := models.ContactInquiry{FullName: "John", Email: "john@example.com", Subject: "hi", Message: "hello", Status: models.InquiryStatusNew}
	utils.PortalDB.Create(&inquiry)

	w := doJSON(r, "PUT", fmt.Sprintf("/admin/inquiries/%d/status", inquiry.ID), `{"status":"responded"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var updated models.ContactInquiry
	utils.PortalDB.First(&updated, inquiry.ID)
	if updated.Status != models.InquiryStatusResponded {
		t.Errorf("status = %q, want responded", updated.Status)
	}
}
