package schedule

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// FilterBusy убирает кандидатов, пересекающихся хотя бы с одним busy-интервалом.
//
// Пересечение проверяется в полуоткрытой семантике: интервалы, граничащие
// ровно в одной точке, НЕ конфликтуют. Слот 09:00–09:30 не конфликтует с
// занятостью 09:30–10:00; слот 09:00–09:30 конфликтует с занятостью
// 09:15–09:45. Частичная доступность слота не поддерживается: любое
// пересечение выбрасывает слот целиком.
//
// Busy-интервалы сортируются и склеиваются один раз, после чего кандидаты
// (уже упорядоченные по времени) проверяются одним проходом, без
// попарного сравнения все-со-всеми.
func FilterBusy(candidates, busy []domain.TimeInterval) []domain.TimeInterval {
	if len(busy) == 0 {
		return append([]domain.TimeInterval(nil), candidates...)
	}

	merged := mergeIntervals(busy)

	result := make([]domain.TimeInterval, 0, len(candidates))
	idx := 0
	for _, c := range candidates {
		// Пропускаем занятые интервалы, закончившиеся до начала кандидата.
		// Кандидаты упорядочены, поэтому указатель только движется вперед.
		for idx < len(merged) && !merged[idx].End.After(c.Start) {
			idx++
		}
		if idx < len(merged) && merged[idx].Start.Before(c.End) {
			continue // пересечение
		}
		result = append(result, c)
	}

	return result
}

// mergeIntervals сортирует интервалы по началу и склеивает пересекающиеся
// и соприкасающиеся. Для фильтрации склейка соприкасающихся безопасна:
// граничная точка не принадлежит полуоткрытому интервалу.
func mergeIntervals(intervals []domain.TimeInterval) []domain.TimeInterval {
	sorted := append([]domain.TimeInterval(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := make([]domain.TimeInterval, 0, len(sorted))
	for _, iv := range sorted {
		if len(merged) > 0 && !iv.Start.After(merged[len(merged)-1].End) {
			if iv.End.After(merged[len(merged)-1].End) {
				merged[len(merged)-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}
