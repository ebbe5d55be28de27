package recognition

import (
	"errors"
	"fmt"

	"github.com/Kagami/go-face"
)

// ErrModelLoad - фатальная ошибка загрузки весов детектора/дескриптора.
// Пока она не устранена, никакая классификация невозможна.
var ErrModelLoad = errors.New("face model load failure")

// Engine определяет контракт детекции лиц и извлечения дескрипторов
type Engine interface {
	// DetectAll находит все лица на изображении
	DetectAll(data []byte) ([]Detection, error)
	// DetectAllFile находит все лица в файле изображения
	DetectAllFile(path string) ([]Detection, error)
	// DetectPrimaryFile находит единственное основное лицо в файле.
	// Возвращает (nil, nil), если лицо не найдено однозначно.
	DetectPrimaryFile(path string) (*Detection, error)
	Close()
}

// goFaceEngine - реализация Engine поверх dlib (go-face)
type goFaceEngine struct {
	rec *face.Recognizer
}

// NewEngine загружает модели dlib из каталога. Отсутствие или порча
// весов - фатально: возвращается ErrModelLoad.
func NewEngine(modelsDir string) (Engine, error) {
	rec, err := face.NewRecognizer(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	return &goFaceEngine{rec: rec}, nil
}

func (e *goFaceEngine) DetectAll(data []byte) ([]Detection, error) {
	faces, err := e.rec.Recognize(data)
	if err != nil {
		return nil, fmt.Errorf("face detection failed: %w", err)
	}
	return toDetections(faces), nil
}

func (e *goFaceEngine) DetectAllFile(path string) ([]Detection, error) {
	faces, err := e.rec.RecognizeFile(path)
	if err != nil {
		return nil, fmt.Errorf("face detection failed for %s: %w", path, err)
	}
	return toDetections(faces), nil
}

func (e *goFaceEngine) DetectPrimaryFile(path string) (*Detection, error) {
	f, err := e.rec.RecognizeSingleFile(path)
	if err != nil {
		return nil, fmt.Errorf("face detection failed for %s: %w", path, err)
	}
	if f == nil {
		return nil, nil
	}
	d := toDetection(*f)
	return &d, nil
}

func (e *goFaceEngine) Close() {
	e.rec.Close()
}

func toDetections(faces []face.Face) []Detection {
	detections := make([]Detection, len(faces))
	for i, f := range faces {
		detections[i] = toDetection(f)
	}
	return detections
}

func toDetection(f face.Face) Detection {
	return Detection{
		Box:        f.Rectangle,
		Descriptor: Descriptor(f.Descriptor),
	}
}
