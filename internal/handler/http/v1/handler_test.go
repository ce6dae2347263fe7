package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcmap/toilet-map/internal/auth"
	auth_mocks "github.com/wcmap/toilet-map/internal/auth/mocks"
	"github.com/wcmap/toilet-map/internal/config"
	"github.com/wcmap/toilet-map/internal/models"
	"github.com/wcmap/toilet-map/internal/service"
	"github.com/wcmap/toilet-map/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

const testAdminToken = "11111111-2222-3333-4444-555555555555"

// newTestHandler — вспомогательная функция для создания роутера с моками.
func newTestHandler(t *testing.T) (*gin.Engine, *mocks.MockToiletService, *auth_mocks.MockService) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	toiletMock := mocks.NewMockToiletService(ctrl)
	authMock := auth_mocks.NewMockService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{DefaultRadiusKm: 50}

	handler := NewHandler(toiletMock, authMock, logger, cfg)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router, toiletMock, authMock
}

// expectAdminSession настраивает разрешение токена администратора
func expectAdminSession(authMock *auth_mocks.MockService) *auth.Session {
	sess := &auth.Session{Token: testAdminToken, Email: "admin@example.com", IsAdmin: true}
	authMock.EXPECT().Resolve(gomock.Any(), testAdminToken).Return(sess, nil).AnyTimes()
	return sess
}

func makeRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListToilets_Success(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	distance := 1.25
	toilets := []*models.Toilet{
		{ID: uuid.New(), Name: "Central Park", Latitude: 50.45, Longitude: 30.52, IsApproved: true, Distance: &distance, CreatedAt: time.Now().UTC()},
	}
	toiletMock.EXPECT().
		ListToilets(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *auth.Session, q models.NearbyQuery) ([]*models.Toilet, error) {
			require.NotNil(t, q.Latitude)
			require.NotNil(t, q.Longitude)
			assert.InDelta(t, 50.45, *q.Latitude, 1e-9)
			assert.InDelta(t, 30.52, *q.Longitude, 1e-9)
			require.NotNil(t, q.RadiusKm)
			assert.InDelta(t, 5, *q.RadiusKm, 1e-9)
			return toilets, nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/toilets?lat=50.45&lon=30.52&radius=5", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []ToiletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Central Park", resp[0].Name)
	require.NotNil(t, resp[0].Distance)
	assert.InDelta(t, 1.25, *resp[0].Distance, 1e-9)
}

func TestListToilets_ZeroRadiusPassedThrough(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	// radius=0 передается как есть, а не как отсутствующий параметр
	toiletMock.EXPECT().
		ListToilets(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *auth.Session, q models.NearbyQuery) ([]*models.Toilet, error) {
			require.NotNil(t, q.RadiusKm)
			assert.Zero(t, *q.RadiusKm)
			return []*models.Toilet{}, nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/toilets?lat=50.45&lon=30.52&radius=0", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListToilets_OmittedRadiusIsNil(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	toiletMock.EXPECT().
		ListToilets(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *auth.Session, q models.NearbyQuery) ([]*models.Toilet, error) {
			assert.Nil(t, q.RadiusKm)
			return []*models.Toilet{}, nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/toilets?lat=50.45&lon=30.52", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListToilets_InvalidLat(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	toiletMock.EXPECT().ListToilets(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/toilets?lat=abc&lon=30.52", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListToilets_ServiceError(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	toiletMock.EXPECT().
		ListToilets(gomock.Any(), nil, gomock.Any()).
		Return(nil, assert.AnError).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/toilets", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetToilet_Success(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)
	toiletID := uuid.New()

	toiletMock.EXPECT().
		GetToilet(gomock.Any(), nil, toiletID).
		Return(&models.Toilet{ID: toiletID, Name: "Station WC", IsApproved: true}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/toilets/"+toiletID.String(), "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ToiletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, toiletID, resp.ID)
	assert.Nil(t, resp.Distance)
}

func TestGetToilet_NotFound(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)
	toiletID := uuid.New()

	toiletMock.EXPECT().
		GetToilet(gomock.Any(), nil, toiletID).
		Return(nil, service.ErrToiletNotFound).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/toilets/"+toiletID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetToilet_InvalidID(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	toiletMock.EXPECT().GetToilet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/toilets/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateToilet_Success(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	toiletMock.EXPECT().
		CreateToilet(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *auth.Session, toilet *models.Toilet) error {
			assert.Equal(t, "Central Park", toilet.Name)
			assert.True(t, toilet.IsFree) // Дефолт при отсутствии поля
			toilet.ID = uuid.New()
			toilet.SubmittedBy = "web"
			toilet.CreatedAt = time.Now().UTC()
			return nil
		}).Times(1)

	body := map[string]interface{}{
		"name":      "Central Park",
		"latitude":  50.45,
		"longitude": 30.52,
	}
	w := makeRequest(router, http.MethodPost, "/api/toilets", "", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ToiletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Central Park", resp.Name)
	assert.False(t, resp.IsApproved)
	assert.Equal(t, "web", resp.SubmittedBy)
}

func TestCreateToilet_InvalidJSON(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	toiletMock.EXPECT().CreateToilet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/api/toilets", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateToilet_MissingCoordinates(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	toiletMock.EXPECT().CreateToilet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := map[string]interface{}{"name": "No coordinates"}
	w := makeRequest(router, http.MethodPost, "/api/toilets", "", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateToilet_CoordinatesOutOfRange(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)

	toiletMock.EXPECT().CreateToilet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := map[string]interface{}{
		"name":      "Off the map",
		"latitude":  91.0,
		"longitude": 30.52,
	}
	w := makeRequest(router, http.MethodPost, "/api/toilets", "", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateToilet_ForbiddenWithoutSession(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)
	toiletID := uuid.New()

	// Ни сервис, ни хранилище не должны вызываться
	toiletMock.EXPECT().UpdateToilet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := map[string]interface{}{"isApproved": true}
	w := makeRequest(router, http.MethodPatch, "/api/toilets/"+toiletID.String(), "", body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateToilet_ForbiddenWithRevokedToken(t *testing.T) {
	router, toiletMock, authMock := newTestHandler(t)
	toiletID := uuid.New()

	authMock.EXPECT().Resolve(gomock.Any(), "revoked-token").Return(nil, auth.ErrNoSession).Times(1)
	toiletMock.EXPECT().UpdateToilet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := map[string]interface{}{"isApproved": true}
	w := makeRequest(router, http.MethodPatch, "/api/toilets/"+toiletID.String(), "revoked-token", body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateToilet_AdminSuccess(t *testing.T) {
	router, toiletMock, authMock := newTestHandler(t)
	sess := expectAdminSession(authMock)
	toiletID := uuid.New()

	toiletMock.EXPECT().
		UpdateToilet(gomock.Any(), sess, toiletID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *auth.Session, id uuid.UUID, update models.ToiletUpdate) (*models.Toilet, error) {
			require.NotNil(t, update.IsApproved)
			assert.True(t, *update.IsApproved)
			return &models.Toilet{ID: id, Name: "Approved now", IsApproved: true}, nil
		}).Times(1)

	body := map[string]interface{}{"isApproved": true}
	w := makeRequest(router, http.MethodPatch, "/api/toilets/"+toiletID.String(), testAdminToken, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ToiletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsApproved)
}

func TestUpdateToilet_NotFound(t *testing.T) {
	router, toiletMock, authMock := newTestHandler(t)
	sess := expectAdminSession(authMock)
	toiletID := uuid.New()

	toiletMock.EXPECT().
		UpdateToilet(gomock.Any(), sess, toiletID, gomock.Any()).
		Return(nil, service.ErrToiletNotFound).Times(1)

	body := map[string]interface{}{"name": "Renamed"}
	w := makeRequest(router, http.MethodPatch, "/api/toilets/"+toiletID.String(), testAdminToken, body)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateToilet_EmptyBody(t *testing.T) {
	router, toiletMock, authMock := newTestHandler(t)
	sess := expectAdminSession(authMock)
	toiletID := uuid.New()

	toiletMock.EXPECT().
		UpdateToilet(gomock.Any(), sess, toiletID, gomock.Any()).
		Return(nil, service.ErrEmptyUpdate).Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/toilets/"+toiletID.String(), testAdminToken, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteToilet_ForbiddenWithoutSession(t *testing.T) {
	router, toiletMock, _ := newTestHandler(t)
	toiletID := uuid.New()

	toiletMock.EXPECT().DeleteToilet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodDelete, "/api/toilets/"+toiletID.String(), "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteToilet_AdminSuccess(t *testing.T) {
	router, toiletMock, authMock := newTestHandler(t)
	sess := expectAdminSession(authMock)
	toiletID := uuid.New()

	toiletMock.EXPECT().DeleteToilet(gomock.Any(), sess, toiletID).Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/toilets/"+toiletID.String(), testAdminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteToilet_NotFound(t *testing.T) {
	router, toiletMock, authMock := newTestHandler(t)
	sess := expectAdminSession(authMock)
	toiletID := uuid.New()

	toiletMock.EXPECT().DeleteToilet(gomock.Any(), sess, toiletID).Return(service.ErrToiletNotFound).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/toilets/"+toiletID.String(), testAdminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogin_Success(t *testing.T) {
	router, _, authMock := newTestHandler(t)

	authMock.EXPECT().
		Login(gomock.Any(), "admin@example.com", "secret").
		Return(&auth.Session{Token: testAdminToken, Email: "admin@example.com", IsAdmin: true}, nil).Times(1)

	body := map[string]interface{}{"email": "admin@example.com", "password": "secret"}
	w := makeRequest(router, http.MethodPost, "/api/auth/login", "", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testAdminToken, resp.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, _, authMock := newTestHandler(t)

	authMock.EXPECT().
		Login(gomock.Any(), "admin@example.com", "wrong").
		Return(nil, auth.ErrInvalidCredentials).Times(1)

	body := map[string]interface{}{"email": "admin@example.com", "password": "wrong"}
	w := makeRequest(router, http.MethodPost, "/api/auth/login", "", body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_InvalidEmail(t *testing.T) {
	router, _, authMock := newTestHandler(t)

	authMock.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := map[string]interface{}{"email": "not-an-email", "password": "secret"}
	w := makeRequest(router, http.MethodPost, "/api/auth/login", "", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout_Success(t *testing.T) {
	router, _, authMock := newTestHandler(t)
	expectAdminSession(authMock)

	authMock.EXPECT().Logout(gomock.Any(), testAdminToken).Return(nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/auth/logout", testAdminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogout_ForbiddenWithoutSession(t *testing.T) {
	router, _, authMock := newTestHandler(t)

	authMock.EXPECT().Logout(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealthCheck(t *testing.T) {
	router, _, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/system/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
