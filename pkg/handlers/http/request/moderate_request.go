package request

type ModerateRequest struct {
	Content string `json:"content"`
	APIKey  string `json:"apikey"`
}

type TestModerateRequest struct {
	Content string `json:"content"`
}
