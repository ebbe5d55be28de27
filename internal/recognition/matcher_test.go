package recognition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptorWith(values map[int]float32) Descriptor {
	var d Descriptor
	for i, v := range values {
		d[i] = v
	}
	return d
}

func TestBestMatch_ExactMatch(t *testing.T) {
	// Подготовка
	aliceDesc := descriptorWith(map[int]float32{0: 1.0})
	matcher := NewMatcher([]LabeledDescriptor{
		{Label: "Alice", Descriptor: aliceDesc},
		{Label: "Bob", Descriptor: descriptorWith(map[int]float32{1: 1.0})},
	})

	// Действие: проба идентична эталону Alice
	match := matcher.BestMatch(aliceDesc)

	// Проверки: расстояние ~0, уверенность ~1
	require.True(t, match.IsKnown())
	assert.Equal(t, "Alice", match.Label)
	assert.InDelta(t, 0.0, match.Distance, 1e-9)
	assert.InDelta(t, 1.0, match.Confidence, 1e-9)
}

func TestBestMatch_NearMatch(t *testing.T) {
	// Подготовка: проба на расстоянии 0.3 от эталона
	matcher := NewMatcher([]LabeledDescriptor{
		{Label: "Alice", Descriptor: descriptorWith(map[int]float32{0: 1.0})},
	})
	probe := descriptorWith(map[int]float32{0: 0.7})

	// Действие
	match := matcher.BestMatch(probe)

	// Проверки
	require.True(t, match.IsKnown())
	assert.Equal(t, "Alice", match.Label)
	assert.InDelta(t, 0.3, match.Distance, 1e-6)
	assert.InDelta(t, 0.7, match.Confidence, 1e-6)
}

func TestBestMatch_AboveThresholdIsUnknown(t *testing.T) {
	// Подготовка: минимальное расстояние до любого эталона >= 0.6
	matcher := NewMatcher([]LabeledDescriptor{
		{Label: "Alice", Descriptor: descriptorWith(map[int]float32{0: 1.0})},
		{Label: "Bob", Descriptor: descriptorWith(map[int]float32{1: 1.0})},
	})
	probe := descriptorWith(map[int]float32{2: 5.0})

	// Действие
	match := matcher.BestMatch(probe)

	// Проверки
	assert.False(t, match.IsKnown())
	assert.Equal(t, LabelUnknown, match.Label)
	assert.Zero(t, match.Confidence)
}

func TestBestMatch_ThresholdBoundaryIsUnknown(t *testing.T) {
	// Подготовка: расстояние ровно 0.6 не считается совпадением
	matcher := NewMatcher([]LabeledDescriptor{
		{Label: "Alice", Descriptor: descriptorWith(map[int]float32{0: 1.0})},
	})
	probe := descriptorWith(map[int]float32{0: 0.4})

	// Действие
	match := matcher.BestMatch(probe)

	// Проверки
	assert.Equal(t, LabelUnknown, match.Label)
}

func TestBestMatch_MultipleSamplesPerLabel(t *testing.T) {
	// Подготовка: несколько эталонов одной личности повышают устойчивость
	matcher := NewMatcher([]LabeledDescriptor{
		{Label: "Alice", Descriptor: descriptorWith(map[int]float32{0: 1.0})},
		{Label: "Alice", Descriptor: descriptorWith(map[int]float32{0: 0.5})},
	})
	probe := descriptorWith(map[int]float32{0: 0.45})

	// Действие: ближайший сосед - второй эталон Alice
	match := matcher.BestMatch(probe)

	// Проверки
	require.True(t, match.IsKnown())
	assert.Equal(t, "Alice", match.Label)
	assert.InDelta(t, 0.05, match.Distance, 1e-6)
}
