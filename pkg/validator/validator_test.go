package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/gudang/pkg/validator"
)

type sampleStruct struct {
	ProductID string `validate:"required,uuid"`
	Name      string `validate:"required,min=1,max=10"`
	EntryDate string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		ProductID: "550e8400-e29b-41d4-a716-446655440000",
		Name:      "kardus",
		EntryDate: "2026-08-28",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ProductID"] != "This field is required" {
		t.Errorf("unexpected ProductID message: %q", m["ProductID"])
	}
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_datetime(t *testing.T) {
	s := sampleStruct{
		ProductID: "550e8400-e29b-41d4-a716-446655440000",
		Name:      "kardus",
		EntryDate: "28/08/2026",
	}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["EntryDate"] != "Must be a date in 2006-01-02 format" {
		t.Errorf("unexpected EntryDate message: %q", m["EntryDate"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{ProductID: "550e8400-e29b-41d4-a716-446655440000", Name: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type credentialsReq struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"username":"budi","password":"rahasia-gudang"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[credentialsReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Username != "budi" {
		t.Errorf("unexpected Username: %q", req.Username)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[credentialsReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"username":"budi"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[credentialsReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing password")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "password") {
		t.Errorf("expected field name in body, got: %s", w.Body.String())
	}
}

// --- ValidateStruct (multipart forms are parsed by hand, then validated) ---

type productForm struct {
	Name  string `json:"name" validate:"required,max=255"`
	Stock int    `json:"stock" validate:"gte=0"`
}

func TestValidateStruct_valid(t *testing.T) {
	w := httptest.NewRecorder()
	if ok := pkgvalidator.ValidateStruct(w, &productForm{Name: "Kardus", Stock: 5}); !ok {
		t.Fatalf("expected ok=true, response: %s", w.Body.String())
	}
}

func TestValidateStruct_invalid(t *testing.T) {
	w := httptest.NewRecorder()
	if ok := pkgvalidator.ValidateStruct(w, &productForm{Name: "", Stock: -1}); ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "name") || !strings.Contains(w.Body.String(), "stock") {
		t.Errorf("expected both field names in body, got: %s", w.Body.String())
	}
}
