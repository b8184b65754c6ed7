package dto

// VlogResponse represents a travel vlog in responses
type VlogResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	DestinationID string   `json:"destination_id"`
	Type          string   `json:"type"`
	AuthorID      string   `json:"author_id"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	VideoURL      string   `json:"video_url,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Views         int      `json:"views"`
	Likes         int      `json:"likes"`
	Tags          []string `json:"tags"`
	Featured      bool     `json:"featured"`
	UploadDate    string   `json:"upload_date"`
}

// VlogListResponse envelope
type VlogListResponse struct {
	Vlogs []VlogResponse `json:"vlogs"`
}

// VlogDetailResponse envelope
type VlogDetailResponse struct {
	Vlog VlogResponse `json:"vlog"`
}

// LikeVlogResponse is the payload returned after liking a vlog
type LikeVlogResponse struct {
	Success bool `json:"success"`
	Likes   int  `json:"likes"`
}
