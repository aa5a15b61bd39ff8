package models

// Review is a customer's rating of a product. CreatedAt is passed through
// as the backend formats it.
type Review struct {
	ID        int64  `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	User      *User  `json:"user,omitempty"`
}

// Author is the reviewer's username, or "anonymous" when the backend
// leaves the user out.
func (r Review) Author() string {
	if r.User == nil || r.User.Username == "" {
		return "anonymous"
	}
	return r.User.Username
}

// ReviewRequest is the body of POST /reviews/products/{id}. Rating is 1..5.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}
