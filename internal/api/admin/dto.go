package admin

type InfoResponse struct {
	ProjectName string `json:"project_name"`
	Version     string `json:"version"`
}
