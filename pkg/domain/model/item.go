package model

// Item is the projected record shape for issues and merge requests.
// Exactly these five fields are returned to callers; decoding upstream
// records into this struct drops everything else.
type Item struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	State     string `json:"state"`
	WebURL    string `json:"web_url"`
}

// ListItemsQuery is the page-scoped filter for upstream item listings
type ListItemsQuery struct {
	CreatedAfter  string `url:"created_after"`
	CreatedBefore string `url:"created_before"`
	PerPage       int    `url:"per_page"`
	Page          int    `url:"page"`
}
