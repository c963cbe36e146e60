package models

type NoticeCategory string

const (
	NoticeUrgent  NoticeCategory = "urgent"
	NoticeNew     NoticeCategory = "new"
	NoticeGeneral NoticeCategory = "general"
)

type Notice struct {
	Base
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Date     string         `json:"date"`
	Category NoticeCategory `json:"category"`
	Author   string         `json:"author"`
}

type NoticePatch struct {
	Title    *string         `json:"title,omitempty"`
	Content  *string         `json:"content,omitempty"`
	Date     *string         `json:"date,omitempty"`
	Category *NoticeCategory `json:"category,omitempty"`
	Author   *string         `json:"author,omitempty"`
}

func (p NoticePatch) Apply(n *Notice) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Date != nil {
		n.Date = *p.Date
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	if p.Author != nil {
		n.Author = *p.Author
	}
}
