package models

// BlogPost is a shell script co-located with the server, presented as a blog
// entry. Posts are discovered by filesystem glob; there is no table behind
// them and no creation API.
type BlogPost struct {
	Title     string `json:"title"`
	Filename  string `json:"filename"`
	Author    string `json:"author"`
	Excerpt   string `json:"excerpt,omitempty"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"created_at"`
	Size      int64  `json:"size"`
}
