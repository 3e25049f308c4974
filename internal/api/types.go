// Package api defines the HTTP request/response contract of the console.
package api

import "time"

// ErrorCode is the machine-readable code attached to error responses.
type ErrorCode string

const (
	// PERMISSIONDENIED maps to HTTP 403.
	PERMISSIONDENIED ErrorCode = "PERMISSION_DENIED"
	// BADPROJECT maps to HTTP 400.
	BADPROJECT ErrorCode = "BAD_PROJECT"
	// BADENVIRONMENT maps to HTTP 400.
	BADENVIRONMENT ErrorCode = "BAD_ENVIRONMENT"
	// BADCONTRACT maps to HTTP 400.
	BADCONTRACT ErrorCode = "BAD_CONTRACT"
	// VALIDATION marks rejected input.
	VALIDATION ErrorCode = "VALIDATION"
	// UNAUTHORIZED marks missing or invalid bearer credentials.
	UNAUTHORIZED ErrorCode = "UNAUTHORIZED"
	// RATELIMITED marks callers over their request budget.
	RATELIMITED ErrorCode = "RATE_LIMITED"
	// INTERNALERROR marks unclassified failures.
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// ErrorBody carries the code and human-readable message of a failed request.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Project is the transport representation of a project.
type Project struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Net       string     `json:"net"`
	Active    bool       `json:"active"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Environment is the transport representation of an environment.
type Environment struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"projectId"`
	Name      string `json:"name"`
	Net       string `json:"net"`
	Active    bool   `json:"active"`
}

// Contract is the transport representation of a contract.
type Contract struct {
	ID            int64      `json:"id"`
	Address       string     `json:"address"`
	Net           string     `json:"net"`
	ProjectID     int64      `json:"projectId"`
	EnvironmentID int64      `json:"environmentId"`
	Active        bool       `json:"active"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// APIKey is the transport representation of a provisioned key.
type APIKey struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"projectId"`
	Key       string     `json:"key"`
	Active    bool       `json:"active"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Team is the transport representation of a team.
type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// User is the transport representation of a console user.
type User struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// CreateProjectRequest is the body of POST /projects/create.
type CreateProjectRequest struct {
	Name string `json:"name"`
	Net  string `json:"net,omitempty"`
}

// DeleteProjectRequest is the body of POST /projects/delete.
type DeleteProjectRequest struct {
	ID int64 `json:"id"`
}

// AddContractRequest is the body of POST /projects/addContract.
type AddContractRequest struct {
	EnvironmentID int64  `json:"environmentId"`
	Address       string `json:"address"`
}

// RemoveContractRequest is the body of POST /projects/removeContract.
type RemoveContractRequest struct {
	ID int64 `json:"id"`
}

// ProjectIDRequest is the body of operations addressing a project by id.
type ProjectIDRequest struct {
	ProjectID int64 `json:"projectId"`
}

// ProvisionResponse is the body returned by POST /users/provision.
type ProvisionResponse struct {
	User User `json:"user"`
	Team Team `json:"team"`
}
