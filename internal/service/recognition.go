package service

import (
	"github.com/nirapotta/sos-backend/internal/recognition"
)

// RecognitionService определяет контракт сканирования изображений
// и управления watchlist
type RecognitionService interface {
	ScanImage(data []byte) (*recognition.ImageScanResult, error)
	ReloadWatchlist() int
}
