package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/recognition"
	"github.com/nirapotta/sos-backend/internal/service"
	"github.com/nirapotta/sos-backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	alerts      *mocks.MockAlertService
	evidence    *mocks.MockEvidenceService
	recognition *mocks.MockRecognitionService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		alerts:      mocks.NewMockAlertService(ctrl),
		evidence:    mocks.NewMockEvidenceService(ctrl),
		recognition: mocks.NewMockRecognitionService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		NearbyAlertsRadiusMeters: 5000,
		UploadsDir:               t.TempDir(),
	}

	handler := NewHandler(m.alerts, m.evidence, m.recognition, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSOS_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateSOSRequest{
		UserID:    "user-1",
		Latitude:  23.8103,
		Longitude: 90.4125,
	}
	expected := &models.SOSAlert{
		AlertID:       "SOS-1-ABCDEF01",
		UserID:        "user-1",
		UserName:      "Elena Petrova",
		Latitude:      23.8103,
		Longitude:     90.4125,
		Status:        models.AlertStatusActive,
		TriggerMethod: models.TriggerMethodButton,
	}

	m.alerts.EXPECT().
		CreateSOSAlert(gomock.Any(), "user-1", 23.8103, 90.4125, "").
		Return(expected, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SOSAlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SOS-1-ABCDEF01", resp.AlertID)
	assert.Equal(t, models.AlertStatusActive, resp.Status)
}

func TestCreateSOS_MissingUserID(t *testing.T) {
	_, router := newTestHandler(t)
	bodyBytes, _ := json.Marshal(CreateSOSRequest{Latitude: 23.8103, Longitude: 90.4125})
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSOS_InvalidTriggerMethod(t *testing.T) {
	_, router := newTestHandler(t)
	body := []byte(`{"user_id":"user-1","latitude":23.8103,"longitude":90.4125,"trigger_method":"telepathy"}`)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSOSLocation_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := UpdateLocationRequest{Latitude: 23.8110, Longitude: 90.4130, AccuracyMeters: 5}

	m.alerts.EXPECT().
		UpdateSOSLocation(gomock.Any(), "SOS-1-ABCDEF01", 23.8110, 90.4130, 5.0).
		Return(nil, fmt.Errorf("alert: %w", service.ErrAlertNotActive)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/v1/sos/SOS-1-ABCDEF01/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateSOSLocation_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := UpdateLocationRequest{Latitude: 23.8110, Longitude: 90.4130, AccuracyMeters: 5}
	expected := &models.SOSAlert{
		AlertID:   "SOS-1-ABCDEF01",
		Status:    models.AlertStatusActive,
		Latitude:  23.8110,
		Longitude: 90.4130,
		LocationUpdates: []models.LocationUpdate{
			{Latitude: 23.8110, Longitude: 90.4130, AccuracyMeters: 5},
		},
	}

	m.alerts.EXPECT().
		UpdateSOSLocation(gomock.Any(), "SOS-1-ABCDEF01", 23.8110, 90.4130, 5.0).
		Return(expected, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/v1/sos/SOS-1-ABCDEF01/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SOSAlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.LocationUpdates, 1)
}

func TestCancelSOS_Forbidden(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CancelSOSRequest{UserID: "intruder"}

	m.alerts.EXPECT().
		CancelSOSAlert(gomock.Any(), "SOS-1-ABCDEF01", "intruder").
		Return(nil, fmt.Errorf("alert: %w", service.ErrUnauthorized)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/v1/sos/SOS-1-ABCDEF01/cancel", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetSOS_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.alerts.EXPECT().
		GetSOSAlert(gomock.Any(), "SOS-MISSING").
		Return(nil, fmt.Errorf("alert: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/SOS-MISSING", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNearbySOS_DefaultRadius(t *testing.T) {
	m, router := newTestHandler(t)
	expected := []*models.SOSAlert{
		{AlertID: "SOS-1-ABCDEF01", Status: models.AlertStatusActive},
	}

	// Радиус не передан: берется значение из конфигурации
	m.alerts.EXPECT().
		GetNearbyAlerts(gomock.Any(), 23.8103, 90.4125, 5000.0).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/nearby?latitude=23.8103&longitude=90.4125", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []SOSAlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "SOS-1-ABCDEF01", resp[0].AlertID)
}

func TestNearbySOS_InvalidLatitude(t *testing.T) {
	_, router := newTestHandler(t)
	w := makeRequest(router, "GET", "/api/v1/sos/nearby?latitude=abc&longitude=90.4125", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func buildMultipart(t *testing.T, fields map[string]string, fileField, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestSubmitVideoEvidence_Success(t *testing.T) {
	m, router := newTestHandler(t)
	body, contentType := buildMultipart(t,
		map[string]string{"user_id": "user-1", "latitude": "23.8103", "longitude": "90.4125"},
		"video", "clip.mp4", []byte("fake video bytes"),
	)

	m.evidence.EXPECT().
		ProcessVideoEvidence(gomock.Any(), "user-1", gomock.Any(), gomock.Any(), 23.8103, 90.4125).
		Return(&models.EvidenceResult{
			StationName:          "Gulshan Police Station",
			StationEmail:         "ops@gulshan.police.example",
			MatchCount:           1,
			UnknownCount:         2,
			RecognitionAvailable: true,
		}, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/evidence/video", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EvidenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.MatchCount)
	assert.True(t, resp.RecognitionAvailable)
}

func TestSubmitVideoEvidence_MissingFile(t *testing.T) {
	_, router := newTestHandler(t)
	body, contentType := buildMultipart(t,
		map[string]string{"user_id": "user-1", "latitude": "23.8103", "longitude": "90.4125"},
		"", "", nil,
	)

	w := makeRequest(router, "POST", "/api/v1/evidence/video", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScanImage_Success(t *testing.T) {
	m, router := newTestHandler(t)
	imageData := []byte("fake image bytes")
	body, contentType := buildMultipart(t, nil, "image", "photo.jpg", imageData)

	m.recognition.EXPECT().
		ScanImage(imageData).
		Return(&recognition.ImageScanResult{
			Recognized: []recognition.RecognizedFace{{Name: "Ivan Orlov", Confidence: 0.82}},
			Unknown:    []recognition.UnknownFace{{}},
			TotalFaces: 2,
		}, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/recognition/image", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ImageScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalFaces)
	require.Len(t, resp.Recognized, 1)
	assert.Equal(t, "Ivan Orlov", resp.Recognized[0].Name)
}

func TestReloadWatchlist_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.recognition.EXPECT().ReloadWatchlist().Return(7).Times(1)

	w := makeRequest(router, "POST", "/api/v1/recognition/reload", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ReloadWatchlistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.SampleCount)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
