package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/api"
	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/lifecycle"
	"github.com/fieldstock/inventory-backend/internal/rbac"
	"github.com/fieldstock/inventory-backend/internal/scope"
	"github.com/fieldstock/inventory-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityAuthn passes requests through with no principal attached.
func identityAuthn(next http.Handler) http.Handler {
	return next
}

// userAuthn attaches a fixed principal the way the bearer middleware would.
func userAuthn(user *auth.AuthenticatedUser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(testutil.ContextWithUser(r.Context(), user)))
		})
	}
}

func testCORSConfig() *config.CORSConfig {
	return &config.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}
}

type serverMocks struct {
	lifecycle *testutil.MockLifecycleService
	tokens    *testutil.MockTokenService
}

func newTestRouter(t *testing.T, user *auth.AuthenticatedUser) (http.Handler, serverMocks) {
	mocks := serverMocks{
		lifecycle: testutil.NewMockLifecycleService(t),
		tokens:    testutil.NewMockTokenService(t),
	}
	server := api.NewServer(nil, mocks.lifecycle, mocks.tokens, auth.NewAuthorizer())

	authn := identityAuthn
	if user != nil {
		authn = userAuthn(user)
	}
	return server.Routes(testCORSConfig(), authn), mocks
}

func superuser() *auth.AuthenticatedUser {
	return &auth.AuthenticatedUser{
		ID:        uuid.New(),
		Email:     "admin@example.gov",
		Superuser: true,
		Active:    true,
	}
}

func TestGetHealth(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	ts := testutil.NewTestServer(t, nil, router)

	resp := ts.MakeRequest(t, testutil.Request{Method: http.MethodGet, Path: "/health"})

	assert.Equal(t, http.StatusOK, resp.Code)
	testutil.AssertJSON(t, resp, "status", "ok")
	testutil.AssertJSONExists(t, resp, "timestamp")
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return token pair", func(t *testing.T) {
		router, mocks := newTestRouter(t, nil)
		ts := testutil.NewTestServer(t, nil, router)

		mocks.tokens.On("Login", mock.Anything, "user@example.gov", "secret").
			Return("access-token", "refresh-token", nil)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/auth/login",
			Body:   map[string]string{"email": "user@example.gov", "password": "secret"},
		})

		assert.Equal(t, http.StatusOK, resp.Code)
		testutil.AssertJSON(t, resp, "access_token", "access-token")
		testutil.AssertJSON(t, resp, "refresh_token", "refresh-token")
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		router, mocks := newTestRouter(t, nil)
		ts := testutil.NewTestServer(t, nil, router)

		mocks.tokens.On("Login", mock.Anything, "user@example.gov", "wrong").
			Return("", "", auth.ErrInvalidCredentials)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/auth/login",
			Body:   map[string]string{"email": "user@example.gov", "password": "wrong"},
		})

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		body := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, api.CodeAuthRequired, body["code"])
	})

	t.Run("disabled account maps to 403", func(t *testing.T) {
		router, mocks := newTestRouter(t, nil)
		ts := testutil.NewTestServer(t, nil, router)

		mocks.tokens.On("Login", mock.Anything, "user@example.gov", "secret").
			Return("", "", auth.ErrAccountDisabled)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/auth/login",
			Body:   map[string]string{"email": "user@example.gov", "password": "secret"},
		})

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("missing fields map to 400", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)
		ts := testutil.NewTestServer(t, nil, router)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/auth/login",
			Body:   map[string]string{"email": "user@example.gov"},
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestGetMe(t *testing.T) {
	t.Run("returns the principal", func(t *testing.T) {
		user := superuser()
		router, _ := newTestRouter(t, user)
		ts := testutil.NewTestServer(t, nil, router)

		resp := ts.MakeRequest(t, testutil.Request{Method: http.MethodGet, Path: "/me"})

		assert.Equal(t, http.StatusOK, resp.Code)
		testutil.AssertJSON(t, resp, "email", user.Email)
		testutil.AssertJSON(t, resp, "superuser", true)
	})

	t.Run("unauthenticated maps to 401", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)
		ts := testutil.NewTestServer(t, nil, router)

		resp := ts.MakeRequest(t, testutil.Request{Method: http.MethodGet, Path: "/me"})

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestListItems(t *testing.T) {
	t.Run("returns page with meta", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		summaries := []lifecycle.ItemSummary{
			{ID: uuid.New(), ItemInfoID: uuid.New(), DeptID: uuid.New(), Status: db.ItemStatusAvailable, CreatedAt: time.Now()},
		}
		mocks.lifecycle.On("ListVisible", mock.Anything, int32(10), int32(20)).
			Return(summaries, int64(31), nil)

		resp := ts.MakeRequest(t, testutil.Request{
			Method:      http.MethodGet,
			Path:        "/items",
			QueryParams: map[string]string{"limit": "10", "offset": "20"},
		})

		assert.Equal(t, http.StatusOK, resp.Code)
		meta := resp.Body["meta"].(map[string]interface{})
		assert.Equal(t, float64(31), meta["total"])
		assert.Equal(t, true, meta["has_more"])
		data := resp.Body["data"].([]interface{})
		require.Len(t, data, 1)
	})

	t.Run("limit is capped at 100", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		mocks.lifecycle.On("ListVisible", mock.Anything, int32(100), int32(0)).
			Return([]lifecycle.ItemSummary{}, int64(0), nil)

		resp := ts.MakeRequest(t, testutil.Request{
			Method:      http.MethodGet,
			Path:        "/items",
			QueryParams: map[string]string{"limit": "5000"},
		})

		assert.Equal(t, http.StatusOK, resp.Code)
		mocks.lifecycle.AssertExpectations(t)
	})

	t.Run("unauthenticated maps to 401", func(t *testing.T) {
		router, mocks := newTestRouter(t, nil)
		ts := testutil.NewTestServer(t, nil, router)

		mocks.lifecycle.On("ListVisible", mock.Anything, int32(50), int32(0)).
			Return([]lifecycle.ItemSummary(nil), int64(0), auth.ErrUnauthenticated)

		resp := ts.MakeRequest(t, testutil.Request{Method: http.MethodGet, Path: "/items"})

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestVerifyItem(t *testing.T) {
	t.Run("invalid target status maps to 400", func(t *testing.T) {
		router, _ := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + uuid.NewString() + "/verify",
			Body:   map[string]string{"status": "borrowed"},
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		body := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, api.CodeValidationError, body["code"])
	})

	t.Run("verify regression maps to 409 invalid transition", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		mocks.lifecycle.On("Verify", mock.Anything, itemID, db.ItemStatusVerified, (*string)(nil)).
			Return(db.Item{}, lifecycle.ErrVerifyRegression)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + itemID.String() + "/verify",
			Body:   map[string]string{"status": "verified"},
		})

		assert.Equal(t, http.StatusConflict, resp.Code)
		body := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, api.CodeInvalidTransition, body["code"])
	})

	t.Run("out of scope renders as not found", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		mocks.lifecycle.On("Verify", mock.Anything, itemID, db.ItemStatusVerified, (*string)(nil)).
			Return(db.Item{}, &scope.OutOfScopeError{Resource: "item", ID: itemID})

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + itemID.String() + "/verify",
			Body:   map[string]string{"status": "verified"},
		})

		assert.Equal(t, http.StatusNotFound, resp.Code)
		body := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, api.CodeResourceNotFound, body["code"])
	})

	t.Run("missing permission maps to 403", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		mocks.lifecycle.On("Verify", mock.Anything, itemID, db.ItemStatusVerified, (*string)(nil)).
			Return(db.Item{}, &auth.ForbiddenError{Permission: rbac.VerifyItems})

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + itemID.String() + "/verify",
			Body:   map[string]string{"status": "verified"},
		})

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("successful verify returns the item", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		mocks.lifecycle.On("Verify", mock.Anything, itemID, db.ItemStatusAvailable, (*string)(nil)).
			Return(db.Item{ID: itemID, Status: db.ItemStatusAvailable}, nil)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + itemID.String() + "/verify",
			Body:   map[string]string{"status": "available"},
		})

		assert.Equal(t, http.StatusOK, resp.Code)
		testutil.AssertJSON(t, resp, "status", "available")
	})
}

func TestIssueItem(t *testing.T) {
	t.Run("already borrowed maps to 409 conflict", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		borrowerID := uuid.New()
		mocks.lifecycle.On("Issue", mock.Anything, itemID, borrowerID, (*time.Time)(nil), (*string)(nil)).
			Return(db.BorrowRecord{}, lifecycle.ErrAlreadyBorrowed)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + itemID.String() + "/issue",
			Body:   map[string]string{"borrower_id": borrowerID.String()},
		})

		assert.Equal(t, http.StatusConflict, resp.Code)
		body := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, api.CodeConflict, body["code"])
	})

	t.Run("missing borrower id maps to 400", func(t *testing.T) {
		router, _ := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + uuid.NewString() + "/issue",
			Body:   map[string]string{},
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("inactive borrower maps to 400", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		borrowerID := uuid.New()
		mocks.lifecycle.On("Issue", mock.Anything, itemID, borrowerID, (*time.Time)(nil), (*string)(nil)).
			Return(db.BorrowRecord{}, lifecycle.ErrBorrowerInactive)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + itemID.String() + "/issue",
			Body:   map[string]string{"borrower_id": borrowerID.String()},
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestCreateItem(t *testing.T) {
	t.Run("bad eol date maps to 400", func(t *testing.T) {
		router, _ := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items",
			Body: map[string]interface{}{
				"item_info_id": uuid.NewString(),
				"dept_id":      uuid.NewString(),
				"eol_date":     "June 2031",
			},
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("created item returns 201", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		mocks.lifecycle.On("Create", mock.Anything, mock.AnythingOfType("lifecycle.CreateItemInput")).
			Return(db.Item{ID: itemID, Status: db.ItemStatusPending}, nil)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items",
			Body: map[string]interface{}{
				"item_info_id": uuid.NewString(),
				"dept_id":      uuid.NewString(),
				"attributes":   []map[string]string{{"key": "capacity", "value": "25"}},
			},
		})

		assert.Equal(t, http.StatusCreated, resp.Code)
		testutil.AssertJSON(t, resp, "status", "pending")
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("bad eol date maps to 400", func(t *testing.T) {
		router, _ := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPatch,
			Path:   "/items/" + uuid.NewString(),
			Body:   map[string]string{"eol_date": "June 2031"},
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("updated item returns 200", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		mocks.lifecycle.On("Update", mock.Anything, itemID, mock.AnythingOfType("lifecycle.UpdateItemInput")).
			Return(db.Item{ID: itemID, Status: db.ItemStatusPending}, nil)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPatch,
			Path:   "/items/" + itemID.String(),
			Body:   map[string]string{"operational_notes": "relocated"},
		})

		assert.Equal(t, http.StatusOK, resp.Code)
		testutil.AssertJSON(t, resp, "id", itemID.String())
	})
}

func TestAttachItemAttributes(t *testing.T) {
	t.Run("empty attribute list maps to 400", func(t *testing.T) {
		router, _ := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + uuid.NewString() + "/attributes",
			Body:   map[string]interface{}{"attributes": []map[string]string{}},
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		body := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, api.CodeValidationError, body["code"])
	})

	t.Run("attached values are echoed back", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		itemID := uuid.New()
		mocks.lifecycle.On("AttachAttributes", mock.Anything, itemID,
			[]lifecycle.AttributeValue{{Key: "capacity", Value: "40"}}).
			Return([]db.ListItemAttributeValuesByItemRow{
				{Key: "capacity", Datatype: db.AttributeDatatypeNumber, Value: "40"},
			}, nil)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/items/" + itemID.String() + "/attributes",
			Body: map[string]interface{}{
				"attributes": []map[string]string{{"key": "capacity", "value": "40"}},
			},
		})

		assert.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].([]interface{})
		require.Len(t, data, 1)
		first := data[0].(map[string]interface{})
		assert.Equal(t, "capacity", first["key"])
		assert.Equal(t, "40", first["value"])
	})
}

func TestDeleteItem(t *testing.T) {
	router, mocks := newTestRouter(t, superuser())
	ts := testutil.NewTestServer(t, nil, router)

	itemID := uuid.New()
	mocks.lifecycle.On("Delete", mock.Anything, itemID).Return(nil)

	resp := ts.MakeRequest(t, testutil.Request{
		Method: http.MethodDelete,
		Path:   "/items/" + itemID.String(),
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestReturnBorrowRecord(t *testing.T) {
	t.Run("already returned maps to 409", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		recordID := uuid.New()
		mocks.lifecycle.On("Return", mock.Anything, recordID, (*string)(nil), (*time.Time)(nil)).
			Return(db.BorrowRecord{}, lifecycle.ErrAlreadyReturned)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/borrow-records/" + recordID.String() + "/return",
			Body:   map[string]string{},
		})

		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("successful return closes the record", func(t *testing.T) {
		router, mocks := newTestRouter(t, superuser())
		ts := testutil.NewTestServer(t, nil, router)

		recordID := uuid.New()
		mocks.lifecycle.On("Return", mock.Anything, recordID, (*string)(nil), (*time.Time)(nil)).
			Return(db.BorrowRecord{ID: recordID, Status: db.BorrowStatusReturned}, nil)

		resp := ts.MakeRequest(t, testutil.Request{
			Method: http.MethodPost,
			Path:   "/borrow-records/" + recordID.String() + "/return",
			Body:   map[string]string{},
		})

		assert.Equal(t, http.StatusOK, resp.Code)
		testutil.AssertJSON(t, resp, "status", "returned")
	})
}
