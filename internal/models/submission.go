package models

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
)

// Submission — авторский черновик на модерации. Форма совпадает со статьёй,
// плюс статус. Отклонение удаляет запись без следа.
type Submission struct {
	ID       int64  `db:"id"        json:"id"`
	Title    string `db:"title"     json:"title"`
	Category string `db:"category"  json:"category"`
	Author   string `db:"author"    json:"author"`
	Date     string `db:"date"      json:"date"`
	ReadTime int    `db:"read_time" json:"readTime"`
	Excerpt  string `db:"excerpt"   json:"excerpt"`
	Content  string `db:"content"   json:"content"`
	Status   string `db:"status"    json:"status,omitempty"`
}

// ToArticle переносит поля черновика в статью без изменений.
func (s *Submission) ToArticle() *Article {
	return &Article{
		ID:       s.ID,
		Title:    s.Title,
		Category: s.Category,
		Author:   s.Author,
		Date:     s.Date,
		ReadTime: s.ReadTime,
		Excerpt:  s.Excerpt,
		Content:  s.Content,
	}
}
