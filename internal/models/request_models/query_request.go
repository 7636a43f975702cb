package request_models

type QueryRequest struct {
	Question string `json:"question"`
}

type ExportRequest struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}
