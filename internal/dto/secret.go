package dto

type SecretRequest struct {
	SecretName string `json:"secretName" example:"stripe_client_id"`
}
