package commenttests

// Params holds the fixed identifiers and sample data that cases put in their requests.
type Params struct {
	// PostID is sent as the post_id query parameter and in the create-comment payload.
	PostID string
	// FrontendPostID is used in /api/v1/posts/{id}/comments paths.
	FrontendPostID string
	// CommentID is used in /api/v1/comments/{id} paths.
	CommentID      string
	UserID         string
	UserName       string
	CommentContent string
	// UnknownPath must not be routed by the service.
	UnknownPath string
}

func DefaultParams() Params {
	return Params{
		PostID:         "test123",
		FrontendPostID: "1",
		CommentID:      "1",
		UserID:         "test_user_123",
		UserName:       "Test User",
		CommentContent: "This is a test comment.",
		UnknownPath:    "/api/v1/nonexistent",
	}
}
