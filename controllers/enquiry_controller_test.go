package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"customprint-api/models"
	"customprint-api/services"

	"github.com/gin-gonic/gin"
)

type fakeEnquiryService struct {
	submitCalled int
	lastInput    models.EnquiryIn
	submitFn     func(ctx context.Context, in models.EnquiryIn) (*models.EnquiryOut, error)
}

func (f *fakeEnquiryService) Submit(ctx context.Context, in models.EnquiryIn) (*models.EnquiryOut, error) {
	f.submitCalled++
	f.lastInput = in
	if f.submitFn != nil {
		return f.submitFn(ctx, in)
	}
	return &models.EnquiryOut{ID: "abc123", CreatedAt: time.Now().UTC()}, nil
}

type validationResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}

func postEnquiry(t *testing.T, service *fakeEnquiryService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller := NewEnquiryController(service)
	router := gin.New()
	router.POST("/api/enquiries", controller.CreateEnquiry)

	req := httptest.NewRequest(http.MethodPost, "/api/enquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func fieldNames(fields []FieldError) map[string]string {
	m := make(map[string]string, len(fields))
	for _, fe := range fields {
		m[fe.Field] = fe.Message
	}
	return m
}

func TestCreateEnquiryValid(t *testing.T) {
	service := &fakeEnquiryService{}

	recorder := postEnquiry(t, service,
		`{"name":"A","email":"a@b.com","product_type":"Other","message":"hi"}`)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}
	if service.submitCalled != 1 {
		t.Fatalf("expected one submit call, got %d", service.submitCalled)
	}

	var out models.EnquiryOut
	if err := json.Unmarshal(recorder.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.ID != "abc123" {
		t.Fatalf("expected id abc123, got %q", out.ID)
	}
	if out.CreatedAt.IsZero() {
		t.Fatal("expected created_at in response")
	}

	if service.lastInput.Name != "A" || service.lastInput.ProductType != "Other" {
		t.Fatalf("unexpected input passed to service: %+v", service.lastInput)
	}
}

func TestCreateEnquiryUnknownProductType(t *testing.T) {
	service := &fakeEnquiryService{}

	recorder := postEnquiry(t, service,
		`{"name":"A","email":"a@b.com","product_type":"4D Hologram","message":"hi"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	if service.submitCalled != 0 {
		t.Fatal("validation failure must prevent any write")
	}

	var resp validationResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	msg, ok := fieldNames(resp.Fields)["product_type"]
	if !ok {
		t.Fatalf("expected a product_type field error, got %+v", resp.Fields)
	}
	for _, allowed := range models.ProductTypes {
		if !strings.Contains(msg, allowed) {
			t.Fatalf("expected allowed set in message, got %q", msg)
		}
	}
}

func TestCreateEnquiryZeroQuantity(t *testing.T) {
	service := &fakeEnquiryService{}

	recorder := postEnquiry(t, service,
		`{"name":"A","email":"a@b.com","product_type":"Other","quantity":0,"message":"hi"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	if service.submitCalled != 0 {
		t.Fatal("validation failure must prevent any write")
	}

	var resp validationResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := fieldNames(resp.Fields)["quantity"]; !ok {
		t.Fatalf("expected a quantity field error, got %+v", resp.Fields)
	}
}

func TestCreateEnquiryNonIntegerQuantity(t *testing.T) {
	service := &fakeEnquiryService{}

	recorder := postEnquiry(t, service,
		`{"name":"A","email":"a@b.com","product_type":"Other","quantity":1.5,"message":"hi"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	if service.submitCalled != 0 {
		t.Fatal("validation failure must prevent any write")
	}

	var resp validationResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := fieldNames(resp.Fields)["quantity"]; !ok {
		t.Fatalf("expected a quantity field error, got %+v", resp.Fields)
	}
}

func TestCreateEnquiryMalformedEmail(t *testing.T) {
	service := &fakeEnquiryService{}

	recorder := postEnquiry(t, service,
		`{"name":"A","email":"not-an-email","product_type":"Other","message":"hi"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := fieldNames(resp.Fields)["email"]; !ok {
		t.Fatalf("expected an email field error, got %+v", resp.Fields)
	}
}

func TestCreateEnquiryEnumeratesAllFieldErrors(t *testing.T) {
	service := &fakeEnquiryService{}

	recorder := postEnquiry(t, service, `{"email":"bad"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	names := fieldNames(resp.Fields)
	for _, want := range []string{"name", "email", "product_type", "message"} {
		if _, ok := names[want]; !ok {
			t.Fatalf("expected field error for %q, got %+v", want, resp.Fields)
		}
	}
}

func TestCreateEnquiryStoreUnavailable(t *testing.T) {
	service := &fakeEnquiryService{
		submitFn: func(ctx context.Context, in models.EnquiryIn) (*models.EnquiryOut, error) {
			return nil, services.ErrStoreUnavailable
		},
	}

	recorder := postEnquiry(t, service,
		`{"name":"A","email":"a@b.com","product_type":"Other","message":"hi"}`)

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, recorder.Code)
	}
}

func TestCreateEnquiryStoreFailure(t *testing.T) {
	service := &fakeEnquiryService{
		submitFn: func(ctx context.Context, in models.EnquiryIn) (*models.EnquiryOut, error) {
			return nil, context.DeadlineExceeded
		},
	}

	recorder := postEnquiry(t, service,
		`{"name":"A","email":"a@b.com","product_type":"Other","message":"hi"}`)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}
