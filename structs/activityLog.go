package structs

type ActivityLogJsonModel struct {
	Type      string   `json:"type"`
	TaskID    uint     `json:"task_id,omitempty"`
	Result    bool     `json:"result"`
	Consumers []string `json:"consumers,omitempty"`
	Message   string   `json:"message"`
}
