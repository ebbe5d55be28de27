package recognition

import (
	"image"
	"math"
)

// MatchThreshold - порог евклидова расстояния между дескрипторами.
// Минимальное расстояние ниже порога считается совпадением.
const MatchThreshold = 0.6

// LabelUnknown присваивается лицу, не совпавшему ни с одной записью watchlist
const LabelUnknown = "unknown"

// Descriptor - 128-мерный вектор признаков лица
type Descriptor [128]float32

// Detection - одно обнаруженное лицо: рамка и дескриптор
type Detection struct {
	Box        image.Rectangle
	Descriptor Descriptor
}

// LabeledDescriptor - эталонный дескриптор с именем личности.
// У одной личности может быть несколько эталонов с разных снимков.
type LabeledDescriptor struct {
	Label      string
	Descriptor Descriptor
}

// Match - результат классификации одного дескриптора.
// Confidence = 1 - Distance: это производная от расстояния оценка,
// а не калиброванная вероятность.
type Match struct {
	Label      string
	Distance   float64
	Confidence float64
}

// IsKnown сообщает, совпало ли лицо с watchlist
func (m Match) IsKnown() bool {
	return m.Label != LabelUnknown
}

// Matcher классифицирует дескриптор методом ближайшего соседа
// по множеству эталонных дескрипторов
type Matcher struct {
	samples []LabeledDescriptor
}

// NewMatcher создает Matcher. Пустой набор эталонов недопустим:
// вызывающий обязан проверить watchlist до построения.
func NewMatcher(samples []LabeledDescriptor) *Matcher {
	return &Matcher{samples: samples}
}

// BestMatch находит минимальное евклидово расстояние от пробы до эталонов.
// Если минимум ниже порога - возвращается метка эталона, иначе unknown.
func (m *Matcher) BestMatch(probe Descriptor) Match {
	best := Match{Label: LabelUnknown, Distance: math.Inf(1)}
	for _, s := range m.samples {
		d := euclideanDistance(probe, s.Descriptor)
		if d < best.Distance {
			best.Distance = d
			best.Label = s.Label
		}
	}

	if best.Distance >= MatchThreshold {
		return Match{Label: LabelUnknown, Distance: best.Distance}
	}

	best.Confidence = 1 - best.Distance
	return best
}

func euclideanDistance(a, b Descriptor) float64 {
	var sum float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
