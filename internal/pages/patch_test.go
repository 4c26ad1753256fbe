package pages

import (
	"strings"
	"testing"
)

const pageWithMarkers = `<html><body>
<section>
            <!-- Dynamic Articles Start -->
            <!-- Dynamic Articles End -->
</section>
</body></html>`

func TestSpliceDynamicReplacesWholesale(t *testing.T) {
	first, ok := spliceDynamic(pageWithMarkers, "CARD-1\n", ensureListingMarkers)
	if !ok {
		t.Fatal("слот не найден при наличии маркеров")
	}
	if !strings.Contains(first, "CARD-1") {
		t.Error("блок не вставлен")
	}

	// Повторный прогон заменяет блок целиком, а не дописывает
	second, ok := spliceDynamic(first, "CARD-2\n", ensureListingMarkers)
	if !ok {
		t.Fatal("слот не найден при повторном прогоне")
	}
	if strings.Contains(second, "CARD-1") {
		t.Error("старый блок не удалён — контент дублируется")
	}
	if !strings.Contains(second, "CARD-2") {
		t.Error("новый блок не вставлен")
	}
	if strings.Count(second, markerStart) != 1 || strings.Count(second, markerEnd) != 1 {
		t.Error("маркеры продублированы")
	}
}

func TestSpliceDynamicIdempotent(t *testing.T) {
	once, _ := spliceDynamic(pageWithMarkers, "SAME\n", ensureListingMarkers)
	twice, _ := spliceDynamic(once, "SAME\n", ensureListingMarkers)
	if once != twice {
		t.Error("повторная регенерация с тем же блоком изменила документ")
	}
}

func TestEnsureListingMarkersAfterLastArticle(t *testing.T) {
	doc := `<html><body>
<article>first</article>
<article>second</article>
</body></html>`

	out, ok := spliceDynamic(doc, "CARD\n", ensureListingMarkers)
	if !ok {
		t.Fatal("маркеры не вставлены по фолбэку")
	}
	if !strings.Contains(out, markerStart) || !strings.Contains(out, markerEnd) {
		t.Fatal("маркеры отсутствуют после фолбэка")
	}
	// Маркеры — после последнего </article>
	if strings.Index(out, markerStart) < strings.LastIndex(out, "</article>") {
		t.Error("маркеры вставлены не после последнего </article>")
	}
	if !strings.Contains(out, "CARD") {
		t.Error("блок не вставлен после фолбэка")
	}
}

func TestEnsureHomeMarkersAfterSecondCard(t *testing.T) {
	doc := `<html><body>
            <div class="article-card mb-4">
                <span class="article-badge">A</span>
                <div class="article-meta">By A • Jan 1 • 2 min read</div>
                <p>one</p>
            </div>
            <div class="article-card mb-4">
                <span class="article-badge">B</span>
                <div class="article-meta">By B • Jan 2 • 3 min read</div>
                <p>two</p>
            </div>
</body></html>`

	out, ok := spliceDynamic(doc, "CARD\n", ensureHomeMarkers)
	if !ok {
		t.Fatal("маркеры не вставлены по фолбэку второй карточки")
	}
	if !strings.Contains(out, "CARD") {
		t.Error("блок не вставлен")
	}
	// Обе статические карточки на месте
	if !strings.Contains(out, "<p>one</p>") || !strings.Contains(out, "<p>two</p>") {
		t.Error("статические карточки повреждены")
	}
}

func TestSpliceDynamicNoAnchorLeavesPageUntouched(t *testing.T) {
	doc := `<html><body><p>ни маркеров, ни статей</p></body></html>`

	out, ok := spliceDynamic(doc, "CARD\n", ensureListingMarkers)
	if ok {
		t.Error("слот найден в документе без якорей")
	}
	if out != doc {
		t.Error("документ без якорей изменён")
	}
}
