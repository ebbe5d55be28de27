package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/notifier"
	notifier_mocks "github.com/nirapotta/sos-backend/internal/notifier/mocks"
	"github.com/nirapotta/sos-backend/internal/recognition"
	"github.com/nirapotta/sos-backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type evidenceServiceMocks struct {
	users      *mocks.MockUserRepository
	stations   *mocks.MockStationRepository
	recognizer *mocks.MockVideoAnalyzer
	email      *notifier_mocks.MockEmailSender
}

// newTestEvidenceService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestEvidenceService(t *testing.T, cfg *config.Config) (EvidenceService, *evidenceServiceMocks) {
	ctrl := gomock.NewController(t)
	m := &evidenceServiceMocks{
		users:      mocks.NewMockUserRepository(ctrl),
		stations:   mocks.NewMockStationRepository(ctrl),
		recognizer: mocks.NewMockVideoAnalyzer(ctrl),
		email:      notifier_mocks.NewMockEmailSender(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{
			EvidenceStationRadiusMeters: 50000,
			MaxAttachmentBytes:          25 * 1024 * 1024,
			PublicBaseURL:               "http://localhost:8080",
		}
	}

	service := NewEvidenceService(m.users, m.stations, m.recognizer, m.email, logger, cfg)
	return service, m
}

func writeEvidenceFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evidence.mp4")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0x42}, size), 0o644))
	return path
}

func testEvidenceUser() *models.User {
	return &models.User{
		UserID:      "user-1",
		FullName:    "Elena Petrova",
		PhoneNumber: "+8801700000001",
		Email:       "elena@example.com",
	}
}

func testEvidenceStation() *models.PoliceStation {
	return &models.PoliceStation{
		StationID: "PS-DHK-01",
		Name:      "Gulshan Police Station",
		Latitude:  23.7925,
		Longitude: 90.4078,
		Email:     "ops@gulshan.police.example",
		Phone:     "+8802999999",
	}
}

func TestProcessVideoEvidence_SmallVideoAttached(t *testing.T) {
	// Подготовка
	service, m := newTestEvidenceService(t, nil)
	ctx := context.Background()
	videoPath := writeEvidenceFile(t, 1024)

	// Ожидания
	m.users.EXPECT().GetByUserID(ctx, "user-1").Return(testEvidenceUser(), nil).Times(1)
	m.stations.EXPECT().
		FindNearest(ctx, 23.8103, 90.4125, 50000.0, 1).
		Return([]models.StationWithDistance{{PoliceStation: *testEvidenceStation(), DistanceMeters: 1200}}, nil).
		Times(1)
	m.recognizer.EXPECT().
		ProcessVideo(ctx, videoPath).
		Return(&recognition.VideoResult{}, nil).
		Times(1)
	m.email.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notifier.EmailMessage) error {
			assert.Equal(t, "ops@gulshan.police.example", msg.To)
			assert.Equal(t, "elena@example.com", msg.ReplyTo)
			require.Len(t, msg.Attachments, 1)
			assert.Equal(t, "evidence.mp4", msg.Attachments[0].Filename)
			assert.Contains(t, msg.Body, "attached below")
			assert.Contains(t, msg.Body, "Distance to Gulshan Police Station:")
			return nil
		}).
		Times(1)

	// Действие
	result, err := service.ProcessVideoEvidence(ctx, "user-1", videoPath, "evidence.mp4", 23.8103, 90.4125)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.RecognitionAvailable)
	assert.Equal(t, "Gulshan Police Station", result.StationName)
	assert.Zero(t, result.MatchCount)
}

func TestProcessVideoEvidence_OversizedVideoLinkOnly(t *testing.T) {
	// Подготовка
	cfg := &config.Config{
		EvidenceStationRadiusMeters: 50000,
		MaxAttachmentBytes:          512,
		PublicBaseURL:               "http://localhost:8080",
	}
	service, m := newTestEvidenceService(t, cfg)
	ctx := context.Background()
	videoPath := writeEvidenceFile(t, 2048)

	// Ожидания
	m.users.EXPECT().GetByUserID(ctx, "user-1").Return(testEvidenceUser(), nil).Times(1)
	m.stations.EXPECT().
		FindNearest(ctx, 23.8103, 90.4125, 50000.0, 1).
		Return([]models.StationWithDistance{{PoliceStation: *testEvidenceStation()}}, nil).
		Times(1)
	m.recognizer.EXPECT().ProcessVideo(ctx, videoPath).Return(&recognition.VideoResult{}, nil).Times(1)
	m.email.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notifier.EmailMessage) error {
			assert.Empty(t, msg.Attachments)
			assert.Contains(t, msg.Body, "too large to attach")
			assert.Contains(t, msg.Body, "http://localhost:8080/uploads/evidence.mp4")
			return nil
		}).
		Times(1)

	// Действие
	result, err := service.ProcessVideoEvidence(ctx, "user-1", videoPath, "evidence.mp4", 23.8103, 90.4125)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.RecognitionAvailable)
}

func TestProcessVideoEvidence_MatchesElevateSubjectAndAttachSnapshots(t *testing.T) {
	// Подготовка
	service, m := newTestEvidenceService(t, nil)
	ctx := context.Background()
	videoPath := writeEvidenceFile(t, 256)
	snapshotPath := writeEvidenceFile(t, 64)
	recResult := &recognition.VideoResult{
		Matches: []recognition.VideoMatch{
			{Name: "Ivan Orlov", Confidence: 0.82, SnapshotPath: snapshotPath},
		},
		UnknownCount: 3,
	}

	// Ожидания
	m.users.EXPECT().GetByUserID(ctx, "user-1").Return(testEvidenceUser(), nil).Times(1)
	m.stations.EXPECT().
		FindNearest(ctx, 23.8103, 90.4125, 50000.0, 1).
		Return([]models.StationWithDistance{{PoliceStation: *testEvidenceStation()}}, nil).
		Times(1)
	m.recognizer.EXPECT().ProcessVideo(ctx, videoPath).Return(recResult, nil).Times(1)
	m.email.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notifier.EmailMessage) error {
			assert.True(t, strings.HasPrefix(msg.Subject, "MATCH FOUND: 1 Person(s) Identified"))
			assert.Contains(t, msg.Body, "NAME: Ivan Orlov")
			assert.Contains(t, msg.Body, "CONFIDENCE: 82.0%")
			assert.Contains(t, msg.Body, "UNIDENTIFIED FACES DETECTED: 3")
			// Видео + снапшот совпадения
			require.Len(t, msg.Attachments, 2)
			assert.Equal(t, "match_Ivan_Orlov.png", msg.Attachments[1].Filename)
			return nil
		}).
		Times(1)

	// Действие
	result, err := service.ProcessVideoEvidence(ctx, "user-1", videoPath, "evidence.mp4", 23.8103, 90.4125)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.MatchCount)
	assert.Equal(t, 3, result.UnknownCount)
}

func TestProcessVideoEvidence_RecognitionFailureDegrades(t *testing.T) {
	// Подготовка
	service, m := newTestEvidenceService(t, nil)
	ctx := context.Background()
	videoPath := writeEvidenceFile(t, 256)

	// Ожидания
	m.users.EXPECT().GetByUserID(ctx, "user-1").Return(testEvidenceUser(), nil).Times(1)
	m.stations.EXPECT().
		FindNearest(ctx, 23.8103, 90.4125, 50000.0, 1).
		Return([]models.StationWithDistance{{PoliceStation: *testEvidenceStation()}}, nil).
		Times(1)
	m.recognizer.EXPECT().
		ProcessVideo(ctx, videoPath).
		Return(nil, fmt.Errorf("ffmpeg probe failed")).
		Times(1)
	m.email.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notifier.EmailMessage) error {
			assert.Contains(t, msg.Body, "NO RECOGNITION DATA")
			assert.NotContains(t, msg.Subject, "MATCH FOUND")
			return nil
		}).
		Times(1)

	// Действие
	result, err := service.ProcessVideoEvidence(ctx, "user-1", videoPath, "evidence.mp4", 23.8103, 90.4125)

	// Проверки
	require.NoError(t, err)
	assert.False(t, result.RecognitionAvailable)
	assert.Zero(t, result.MatchCount)
}

func TestProcessVideoEvidence_PreferredStationUsed(t *testing.T) {
	// Подготовка
	cfg := &config.Config{
		EvidenceStationRadiusMeters: 50000,
		MaxAttachmentBytes:          25 * 1024 * 1024,
		PublicBaseURL:               "http://localhost:8080",
		DefaultStationPhone:         "+8802999999",
	}
	service, m := newTestEvidenceService(t, cfg)
	ctx := context.Background()
	videoPath := writeEvidenceFile(t, 256)

	// Ожидания
	m.users.EXPECT().GetByUserID(ctx, "user-1").Return(testEvidenceUser(), nil).Times(1)
	m.stations.EXPECT().GetByPhone(ctx, "+8802999999").Return(testEvidenceStation(), nil).Times(1)
	m.recognizer.EXPECT().ProcessVideo(ctx, videoPath).Return(&recognition.VideoResult{}, nil).Times(1)
	m.email.EXPECT().Send(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.ProcessVideoEvidence(ctx, "user-1", videoPath, "evidence.mp4", 23.8103, 90.4125)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Gulshan Police Station", result.StationName)
}

func TestProcessVideoEvidence_PreferredMissingFallsBackToNearest(t *testing.T) {
	// Подготовка
	cfg := &config.Config{
		EvidenceStationRadiusMeters: 50000,
		MaxAttachmentBytes:          25 * 1024 * 1024,
		PublicBaseURL:               "http://localhost:8080",
		DefaultStationPhone:         "+8802000000",
	}
	service, m := newTestEvidenceService(t, cfg)
	ctx := context.Background()
	videoPath := writeEvidenceFile(t, 256)

	// Ожидания
	m.users.EXPECT().GetByUserID(ctx, "user-1").Return(testEvidenceUser(), nil).Times(1)
	m.stations.EXPECT().
		GetByPhone(ctx, "+8802000000").
		Return(nil, fmt.Errorf("station: %w", ErrNotFound)).
		Times(1)
	m.stations.EXPECT().
		FindNearest(ctx, 23.8103, 90.4125, 50000.0, 1).
		Return([]models.StationWithDistance{{PoliceStation: *testEvidenceStation()}}, nil).
		Times(1)
	m.recognizer.EXPECT().ProcessVideo(ctx, videoPath).Return(&recognition.VideoResult{}, nil).Times(1)
	m.email.EXPECT().Send(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.ProcessVideoEvidence(ctx, "user-1", videoPath, "evidence.mp4", 23.8103, 90.4125)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Gulshan Police Station", result.StationName)
}

func TestProcessVideoEvidence_NoStationAnywhere(t *testing.T) {
	// Подготовка
	service, m := newTestEvidenceService(t, nil)
	ctx := context.Background()
	videoPath := writeEvidenceFile(t, 256)

	// Ожидания
	m.users.EXPECT().GetByUserID(ctx, "user-1").Return(testEvidenceUser(), nil).Times(1)
	m.stations.EXPECT().
		FindNearest(ctx, 23.8103, 90.4125, 50000.0, 1).
		Return(nil, nil).
		Times(1)

	// Действие
	result, err := service.ProcessVideoEvidence(ctx, "user-1", videoPath, "evidence.mp4", 23.8103, 90.4125)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}
