package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/notifier"
	"github.com/nirapotta/sos-backend/internal/recognition"
	"github.com/nirapotta/sos-backend/pkg/geo"
	"github.com/sirupsen/logrus"
)

// VideoAnalyzer определяет контракт анализа видео на известные лица
type VideoAnalyzer interface {
	ProcessVideo(ctx context.Context, videoPath string) (*recognition.VideoResult, error)
}

// EvidenceService определяет контракт конвейера видеодоказательств
type EvidenceService interface {
	ProcessVideoEvidence(ctx context.Context, userID, videoPath, videoFilename string, lat, lon float64) (*models.EvidenceResult, error)
}

// targetMode - явный вариант выбора адресата отчета: настроенный участок,
// ближайший в широком радиусе или никакой (ошибка)
type targetMode int

const (
	targetPreferred targetMode = iota
	targetNearestFallback
)

type evidenceService struct {
	users      UserRepository
	stations   StationRepository
	recognizer VideoAnalyzer
	email      notifier.EmailSender
	logger     *logrus.Logger
	cfg        *config.Config
}

// NewEvidenceService создает конвейер видеодоказательств
func NewEvidenceService(
	users UserRepository,
	stations StationRepository,
	recognizer VideoAnalyzer,
	email notifier.EmailSender,
	logger *logrus.Logger,
	cfg *config.Config,
) EvidenceService {
	return &evidenceService{
		users:      users,
		stations:   stations,
		recognizer: recognizer,
		email:      email,
		logger:     logger,
		cfg:        cfg,
	}
}

// ProcessVideoEvidence прогоняет видео через распознавание и отправляет
// структурированный отчет ответственному участку. Сбой распознавания
// деградирует до отчета с пометкой об отсутствии данных распознавания,
// но не прерывает отправку.
func (s *evidenceService) ProcessVideoEvidence(ctx context.Context, userID, videoPath, videoFilename string, lat, lon float64) (*models.EvidenceResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "evidence",
		"method":  "ProcessVideoEvidence",
		"user_id": userID,
	})
	log.Info("Processing video evidence")

	if err := geo.ValidatePoint(lat, lon); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user, err := s.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve user: %w", err)
	}

	station, err := s.resolveTargetStation(ctx, log, lat, lon)
	if err != nil {
		return nil, err
	}

	// Сбой распознавания не фатален: отчет уходит без данных распознавания
	var recResult *recognition.VideoResult
	if recResult, err = s.recognizer.ProcessVideo(ctx, videoPath); err != nil {
		log.WithError(err).Error("Video recognition failed, sending degraded report")
		recResult = nil
	}

	msg := s.composeReport(user, station, recResult, videoPath, videoFilename, lat, lon)
	if err := s.email.Send(ctx, msg); err != nil {
		log.WithError(err).Error("Failed to deliver evidence report")
		return nil, fmt.Errorf("service: could not deliver evidence report: %w", err)
	}

	result := &models.EvidenceResult{
		StationName:  station.Name,
		StationEmail: station.Email,
	}
	if recResult != nil {
		result.RecognitionAvailable = true
		result.MatchCount = len(recResult.Matches)
		result.UnknownCount = recResult.UnknownCount
	}

	log.WithFields(logrus.Fields{
		"station":       station.Name,
		"match_count":   result.MatchCount,
		"unknown_count": result.UnknownCount,
	}).Info("Video evidence processed")

	return result, nil
}

// decideTargetMode выбирает способ адресации отчета детерминированно,
// без цепочек неявных null-проверок
func (s *evidenceService) decideTargetMode() targetMode {
	if s.cfg.DefaultStationPhone != "" {
		return targetPreferred
	}
	return targetNearestFallback
}

// resolveTargetStation определяет участок-адресат: настроенный по телефону
// или ближайший в широком радиусе. Отсутствие обоих - ErrNotFound.
func (s *evidenceService) resolveTargetStation(ctx context.Context, log *logrus.Entry, lat, lon float64) (*models.PoliceStation, error) {
	mode := s.decideTargetMode()

	if mode == targetPreferred {
		station, err := s.stations.GetByPhone(ctx, s.cfg.DefaultStationPhone)
		if err == nil {
			return station, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("service: preferred station lookup failed: %w", err)
		}
		log.WithField("phone", s.cfg.DefaultStationPhone).Warn("Preferred station not found, falling back to nearest")
	}

	nearest, err := s.stations.FindNearest(ctx, lat, lon, s.cfg.EvidenceStationRadiusMeters, 1)
	if err != nil {
		return nil, fmt.Errorf("service: station discovery failed: %w", err)
	}
	if len(nearest) == 0 {
		return nil, fmt.Errorf("service: no police station to notify: %w", ErrNotFound)
	}
	return &nearest[0].PoliceStation, nil
}

// composeReport собирает письмо-отчет: ссылка на локацию, ссылка на видео,
// вложение видео только при размере ниже потолка, секции совпадений
// и неопознанных лиц, снапшоты совпадений
func (s *evidenceService) composeReport(
	user *models.User,
	station *models.PoliceStation,
	recResult *recognition.VideoResult,
	videoPath, videoFilename string,
	lat, lon float64,
) notifier.EmailMessage {
	locationURL := fmt.Sprintf("https://maps.google.com/?q=%f,%f", lat, lon)
	videoLink := fmt.Sprintf("%s/uploads/%s", strings.TrimRight(s.cfg.PublicBaseURL, "/"), videoFilename)

	subject := fmt.Sprintf("URGENT: SOS Video Evidence from %s", user.FullName)

	var b strings.Builder
	fmt.Fprintf(&b, "User: %s\n", user.FullName)
	fmt.Fprintf(&b, "Phone: %s\n", user.PhoneNumber)
	fmt.Fprintf(&b, "Location: %s\n", locationURL)
	fmt.Fprintf(&b, "Distance to %s: %.0f m\n\n", station.Name, geo.Distance(lat, lon, station.Latitude, station.Longitude))
	fmt.Fprintf(&b, "EVIDENCE VIDEO LINK:\n%s\n", videoLink)
	b.WriteString("(Please copy and paste the link if it is not clickable)\n")

	attachments := []notifier.EmailAttachment{}

	// Вложение видео только при размере ниже потолка, иначе только ссылка
	if info, err := os.Stat(videoPath); err != nil {
		s.logger.WithError(err).Warn("Failed to stat evidence video")
	} else if info.Size() < s.cfg.MaxAttachmentBytes {
		attachments = append(attachments, notifier.EmailAttachment{Path: videoPath, Filename: "evidence.mp4"})
		b.WriteString("\n(Video file is attached below)\n")
	} else {
		b.WriteString("\n(Video file is too large to attach. Please use the link above to view/download)\n")
	}

	if recResult == nil {
		b.WriteString("\n----------------------------------------\n")
		b.WriteString("NO RECOGNITION DATA: video analysis was unavailable for this submission.\n")
		b.WriteString("----------------------------------------\n")
		return notifier.EmailMessage{
			To:          station.Email,
			ReplyTo:     user.Email,
			Subject:     subject,
			Body:        b.String(),
			Attachments: attachments,
		}
	}

	if len(recResult.Matches) > 0 {
		subject = fmt.Sprintf("MATCH FOUND: %d Person(s) Identified - %s", len(recResult.Matches), subject)

		b.WriteString("\n----------------------------------------\n")
		b.WriteString("ALERT: MATCHES FOUND IN VIDEO\n")
		b.WriteString("System detected known individuals from the watch list.\n")

		for i, match := range recResult.Matches {
			fmt.Fprintf(&b, "\n--- PERSON %d ---\n", i+1)
			fmt.Fprintf(&b, "NAME: %s\n", match.Name)
			fmt.Fprintf(&b, "CONFIDENCE: %.1f%%\n", match.Confidence*100)

			if match.SnapshotPath != "" {
				safeName := strings.ReplaceAll(match.Name, " ", "_")
				attachments = append(attachments, notifier.EmailAttachment{
					Path:     match.SnapshotPath,
					Filename: fmt.Sprintf("match_%s.png", safeName),
				})
			}
		}
		b.WriteString("\n----------------------------------------\n")
	}

	if recResult.UnknownCount > 0 {
		fmt.Fprintf(&b, "\nUNIDENTIFIED FACES DETECTED: %d\n", recResult.UnknownCount)
		b.WriteString("(Faces were detected but did not match the watch list)\n")
		b.WriteString("----------------------------------------\n")
	}

	return notifier.EmailMessage{
		To:          station.Email,
		ReplyTo:     user.Email,
		Subject:     subject,
		Body:        b.String(),
		Attachments: attachments,
	}
}
