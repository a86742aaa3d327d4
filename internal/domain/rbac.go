// Package domain holds request types shared by rbac and middleware so that
// neither has to import the other.
package domain

type EnforceRequest struct {
	UserID   string   `json:"user_id"`
	Roles    []string `json:"roles"`
	Resource string   `json:"resource" binding:"required"`
	Action   string   `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
