package response_models

type RunPromptResponse struct {
	Output  string `json:"output"`
	Success bool   `json:"success"`
}

type UsageResponse struct {
	ID           string `json:"id"`
	PromptID     string `json:"prompt_id"`
	InputText    string `json:"input_text"`
	OutputText   string `json:"output_text"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`
	UsageDate    int64  `json:"usage_date"`
}
