package recognition

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/sirupsen/logrus"
)

// RecognizedFace - лицо, совпавшее с watchlist
type RecognizedFace struct {
	Name       string          `json:"name"`
	Confidence float64         `json:"confidence"`
	Box        image.Rectangle `json:"box"`
}

// UnknownFace - обнаруженное, но не опознанное лицо
type UnknownFace struct {
	Box image.Rectangle `json:"box"`
}

// ImageScanResult - результат анализа одного изображения
type ImageScanResult struct {
	Recognized []RecognizedFace `json:"recognized"`
	Unknown    []UnknownFace    `json:"unknown"`
	TotalFaces int              `json:"total_faces"`
}

// VideoMatch - опознанная в видео личность. Дубликаты по кадрам схлопнуты:
// сохраняется первое встреченное совпадение каждой метки.
type VideoMatch struct {
	Name         string  `json:"name"`
	Confidence   float64 `json:"confidence"`
	SnapshotPath string  `json:"-"`
}

// VideoResult - агрегированный результат анализа видео.
// UnknownCount суммируется по всем кадрам без дедупликации.
type VideoResult struct {
	Matches      []VideoMatch `json:"matches"`
	UnknownCount int          `json:"unknown_count"`
}

// Service управляет watchlist и выполняет классификацию изображений и видео
type Service struct {
	engine Engine
	cfg    *config.Config
	logger *logrus.Logger

	// Мьютекс сериализует ленивую первую загрузку watchlist: конкурентные
	// вызовы ждут одну загрузку, а не запускают свои
	mu      sync.Mutex
	loaded  bool
	samples []LabeledDescriptor
}

// NewService создает сервис распознавания. Watchlist загружается лениво
// при первом обращении, перезагрузка только явная через ReloadWatchlist.
func NewService(engine Engine, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		engine: engine,
		cfg:    cfg,
		logger: logger,
	}
}

// watchlist возвращает кешированные эталоны, при первом вызове строя их
// из каталога датасета
func (s *Service) watchlist() []LabeledDescriptor {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.samples = s.buildWatchlist()
		s.loaded = true
	}
	return s.samples
}

// ReloadWatchlist принудительно перестраивает watchlist из датасета.
// Возвращает количество загруженных эталонных дескрипторов.
func (s *Service) ReloadWatchlist() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = s.buildWatchlist()
	s.loaded = true
	return len(s.samples)
}

// buildWatchlist читает каталог датасета: подкаталог - личность с несколькими
// снимками, одиночный файл - личность по имени файла. Снимки без
// детектируемого лица пропускаются с предупреждением. Вызывается под s.mu.
func (s *Service) buildWatchlist() []LabeledDescriptor {
	log := s.logger.WithField("component", "recognition")
	samples := make([]LabeledDescriptor, 0)

	entries, err := os.ReadDir(s.cfg.DatasetDir)
	if err != nil {
		log.WithError(err).Warn("Dataset directory is not readable, watchlist is empty")
		return samples
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			label := name
			personDir := filepath.Join(s.cfg.DatasetDir, name)
			images, err := os.ReadDir(personDir)
			if err != nil {
				log.WithError(err).WithField("label", label).Warn("Failed to read person directory")
				continue
			}

			loaded := 0
			for _, img := range images {
				if img.IsDir() || !isImageFile(img.Name()) {
					continue
				}
				if s.appendSample(&samples, label, filepath.Join(personDir, img.Name())) {
					loaded++
				}
			}
			if loaded > 0 {
				log.WithFields(logrus.Fields{"label": label, "samples": loaded}).Info("Watchlist identity loaded")
			}
			continue
		}

		if isImageFile(name) {
			label := strings.TrimSuffix(name, filepath.Ext(name))
			if s.appendSample(&samples, label, filepath.Join(s.cfg.DatasetDir, name)) {
				log.WithField("label", label).Info("Watchlist identity loaded")
			}
		}
	}

	log.WithField("total_samples", len(samples)).Info("Watchlist build complete")
	return samples
}

func (s *Service) appendSample(samples *[]LabeledDescriptor, label, path string) bool {
	detection, err := s.engine.DetectPrimaryFile(path)
	if err != nil {
		s.logger.WithError(err).WithField("image", path).Warn("Failed to process watchlist image")
		return false
	}
	if detection == nil {
		s.logger.WithField("image", path).Warn("No face detected in watchlist image")
		return false
	}
	*samples = append(*samples, LabeledDescriptor{Label: label, Descriptor: detection.Descriptor})
	return true
}

// ScanImage находит все лица на изображении и классифицирует каждое.
// При пустом watchlist matcher не строится: все лица unknown.
func (s *Service) ScanImage(data []byte) (*ImageScanResult, error) {
	detections, err := s.engine.DetectAll(data)
	if err != nil {
		return nil, err
	}

	result := &ImageScanResult{
		Recognized: []RecognizedFace{},
		Unknown:    []UnknownFace{},
		TotalFaces: len(detections),
	}

	samples := s.watchlist()
	if len(samples) == 0 {
		for _, d := range detections {
			result.Unknown = append(result.Unknown, UnknownFace{Box: d.Box})
		}
		return result, nil
	}

	matcher := NewMatcher(samples)
	for _, d := range detections {
		match := matcher.BestMatch(d.Descriptor)
		if match.IsKnown() {
			result.Recognized = append(result.Recognized, RecognizedFace{
				Name:       match.Label,
				Confidence: match.Confidence,
				Box:        d.Box,
			})
		} else {
			result.Unknown = append(result.Unknown, UnknownFace{Box: d.Box})
		}
	}
	return result, nil
}

// ProcessVideo извлекает равномерно распределенные кадры, классифицирует все
// лица в каждом и агрегирует результат. Временные кадры удаляются на любом
// пути выхода.
func (s *Service) ProcessVideo(ctx context.Context, videoPath string) (*VideoResult, error) {
	tempDir, err := os.MkdirTemp("", "sos_frames_")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp frame dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	frames, err := extractFrames(videoPath, tempDir, s.cfg.FrameCount)
	if err != nil {
		return nil, err
	}

	var matcher *Matcher
	if samples := s.watchlist(); len(samples) > 0 {
		matcher = NewMatcher(samples)
	}

	return s.analyzeFrames(ctx, frames, matcher)
}

// analyzeFrames классифицирует лица по кадрам. Порядок кадров не влияет на
// агрегат: множество совпадений дедуплицируется по метке (первое встреченное
// сохраняется), счетчик unknown суммируется.
func (s *Service) analyzeFrames(ctx context.Context, framePaths []string, matcher *Matcher) (*VideoResult, error) {
	log := s.logger.WithField("component", "recognition")
	seen := make(map[string]bool)
	result := &VideoResult{Matches: []VideoMatch{}}

	for _, framePath := range framePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		detections, err := s.engine.DetectAllFile(framePath)
		if err != nil {
			log.WithError(err).WithField("frame", framePath).Warn("Frame detection failed, skipping")
			continue
		}

		for _, d := range detections {
			if matcher == nil {
				result.UnknownCount++
				continue
			}

			match := matcher.BestMatch(d.Descriptor)
			if !match.IsKnown() {
				result.UnknownCount++
				continue
			}
			if seen[match.Label] {
				continue
			}
			seen[match.Label] = true

			videoMatch := VideoMatch{Name: match.Label, Confidence: match.Confidence}
			if snapshot := s.saveSnapshot(framePath, match.Label); snapshot != "" {
				videoMatch.SnapshotPath = snapshot
			}
			result.Matches = append(result.Matches, videoMatch)
		}
	}

	log.WithFields(logrus.Fields{
		"matches":       len(result.Matches),
		"unknown_count": result.UnknownCount,
	}).Info("Video frame analysis complete")

	return result, nil
}

// saveSnapshot сохраняет кадр с совпадением для вложения в отчет.
// Сбой не фатален: отчет уйдет без снапшота.
func (s *Service) saveSnapshot(framePath, label string) string {
	safeLabel := strings.ReplaceAll(label, " ", "_")
	dst := filepath.Join(s.cfg.UploadsDir, "snapshots", fmt.Sprintf("%s_%d.png", safeLabel, time.Now().UnixNano()))
	if err := copyFile(framePath, dst); err != nil {
		s.logger.WithError(err).WithField("label", label).Warn("Failed to save match snapshot")
		return ""
	}
	return dst
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
