package pages

import "strings"

// Динамическая область страницы ограничена парой маркерных комментариев
// и при каждой регенерации заменяется целиком — повторный прогон не
// дублирует карточки. Если маркеров нет, они вставляются по эвристике
// (последний </article> в ленте, вторая карточка на главной); если
// якоря для вставки тоже нет, страница не трогается.

const (
	markerStart = "<!-- Dynamic Articles Start -->"
	markerEnd   = "<!-- Dynamic Articles End -->"
)

// indexFrom — strings.Index со смещением.
func indexFrom(s, substr string, from int) int {
	if from < 0 || from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

// spliceDynamic заменяет содержимое между маркерами на block.
// ensure вставляет маркеры в документ без них; второй результат —
// удалось ли найти слот.
func spliceDynamic(doc, block string, ensure func(string) (string, bool)) (string, bool) {
	insert := strings.Index(doc, markerStart)
	if insert == -1 {
		var ok bool
		doc, ok = ensure(doc)
		if !ok {
			return doc, false
		}
		insert = strings.Index(doc, markerStart)
	}
	insert += len(markerStart)

	end := strings.Index(doc, markerEnd)
	if end == -1 {
		return doc, false
	}

	return doc[:insert] + "\n" + block + "            " + doc[end:], true
}

// ensureListingMarkers ставит маркеры после последнего </article>.
func ensureListingMarkers(doc string) (string, bool) {
	const closeTag = "</article>"
	last := strings.LastIndex(doc, closeTag)
	if last == -1 {
		return doc, false
	}
	pos := last + len(closeTag)
	return doc[:pos] + "\n            \n            " + markerStart + "\n            " + markerEnd + doc[pos:], true
}

// ensureHomeMarkers ставит маркеры после второй статической карточки.
func ensureHomeMarkers(doc string) (string, bool) {
	const closeDiv = "</div>"

	firstCardStart := strings.Index(doc, `<div class="article-card mb-4">`)
	if firstCardStart == -1 {
		return doc, false
	}
	firstCardEnd := indexFrom(doc, closeDiv, indexFrom(doc, closeDiv, firstCardStart)+1)
	if firstCardEnd == -1 {
		return doc, false
	}
	secondCardStart := indexFrom(doc, `<div class="article-card`, firstCardEnd)
	if secondCardStart == -1 {
		return doc, false
	}
	secondCardEnd := indexFrom(doc, closeDiv, indexFrom(doc, closeDiv, secondCardStart)+1)
	if secondCardEnd == -1 {
		return doc, false
	}

	pos := secondCardEnd + len(closeDiv)
	return doc[:pos] + "\n\n            " + markerStart + "\n            " + markerEnd + doc[pos:], true
}
