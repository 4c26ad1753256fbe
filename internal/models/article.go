package models

// Article — опубликованная статья. ID приходит от клиента (timestamp в мс)
// и служит первичным ключом; статьи никогда не редактируются на месте.
type Article struct {
	ID       int64  `db:"id"        json:"id"`
	Title    string `db:"title"     json:"title"`
	Category string `db:"category"  json:"category"`
	Author   string `db:"author"    json:"author"`
	Date     string `db:"date"      json:"date"`
	ReadTime int    `db:"read_time" json:"readTime"`
	Excerpt  string `db:"excerpt"   json:"excerpt"`
	Content  string `db:"content"   json:"content"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	ID       int64  `json:"id"       example:"1700000000000"`
	Title    string `json:"title"    example:"Квантовые компьютеры уже здесь"`
	Category string `json:"category" example:"Technology"`
	Author   string `json:"author"   example:"Jane Doe"`
	Date     string `json:"date"     example:"January 15, 2025"`
	ReadTime int    `json:"readTime" example:"5"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}

func (r *CreateArticleRequest) ToArticle() *Article {
	return &Article{
		ID:       r.ID,
		Title:    r.Title,
		Category: r.Category,
		Author:   r.Author,
		Date:     r.Date,
		ReadTime: r.ReadTime,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
	}
}
