package response

import "github.com/syamsf/dicoding-forum-api/domain"

// Envelope is the uniform response body: status is "success", "fail" for
// client errors, or "error" for server errors.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

func Fail(message string) Envelope {
	return Envelope{Status: "fail", Message: message}
}

func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}

// AddedThread is the creation acknowledgement payload.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(t domain.AddedThread) AddedThread {
	return AddedThread{ID: t.ID, Title: t.Title, Owner: t.Owner}
}

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedCommentFromDomain(c domain.AddedComment) AddedComment {
	return AddedComment{ID: c.ID, Content: c.Content, Owner: c.Owner}
}

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReplyFromDomain(r domain.AddedReply) AddedReply {
	return AddedReply{ID: r.ID, Content: r.Content, Owner: r.Owner}
}

type AddedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func NewAddedUserFromDomain(u domain.AddedUser) AddedUser {
	return AddedUser{ID: u.ID, Username: u.Username, Fullname: u.Fullname}
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func NewTokenPairFromDomain(p domain.TokenPair) TokenPair {
	return TokenPair{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}
