package pages

import (
	"fmt"

	"techtomorrow/internal/models"
)

// Разметка карточек и страницы статьи. Контент статей — уже готовый
// HTML, одобренный редакцией, поэтому вставляется как есть.

func ArticleDocumentHTML(a *models.Article) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - Tech Tomorrow</title>
    <link rel="stylesheet" href="mainArticle.css">
</head>
<body>
    <header>
        <h1>Tech Tomorrow</h1>
    </header>
    <div class="article-card mb-4">
        <span class="article-category">%s</span>
        <h2 class="article-title">%s</h2>
        <div class="article-meta">By %s • %s • %d min read</div>
        <div class="article-body">
            <strong>Summary:</strong><br>
            %s
        </div>
        <hr>
        <div class="article-full-content">
            %s
        </div>
    </div>
</body>
</html>`, a.Title, a.Category, a.Title, a.Author, a.Date, a.ReadTime, a.Excerpt, a.Content)
}

// listingCard — карточка для общей ленты (articles.html).
func listingCard(a *models.Article) string {
	return fmt.Sprintf(`
            <!-- Article %d -->
            <div class="article-card mb-4">
                <span class="article-category">%s</span>
                <h2 class="article-title">%s</h2>
                <div class="article-meta">By %s • %s • %d min read</div>
                <p class="article-excerpt">
                    %s
                </p>
                <a href="article-%d.html" class="read-more">Read full article →</a>
            </div>
`, a.ID, a.Category, a.Title, a.Author, a.Date, a.ReadTime, a.Excerpt, a.ID)
}

// homeCard — карточка для главной (index.html), другой бейдж и заголовок.
func homeCard(a *models.Article) string {
	return fmt.Sprintf(`
            <!-- Article %d -->
            <div class="article-card mb-4">
                <span class="article-badge">%s</span>
                <h3 class="article-title">%s</h3>
                <div class="article-meta">By %s • %s • %d min read</div>
                <p class="article-excerpt">
                    %s
                </p>
                <a href="article-%d.html" class="read-more">Read full article →</a>
            </div>
`, a.ID, a.Category, a.Title, a.Author, a.Date, a.ReadTime, a.Excerpt, a.ID)
}
