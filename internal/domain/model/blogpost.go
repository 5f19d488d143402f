package model

// DateLayout is the ISO date format used for blog post dates.
const DateLayout = "2006-01-02"

// BlogPost is a published article. Content is Markdown source; the HTTP
// adapter renders it to sanitized HTML on demand. Date is reset to the
// current day on every save.
type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	ImageURL string   `json:"imageUrl"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}
