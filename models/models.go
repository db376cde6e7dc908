package models

import "time"

// App is the persisted form of a registered application. The id is assigned
// by the store on insert and never changes afterwards.
type App struct {
	ID      int64
	Name    string
	Author  string
	Version string
}

// AppDTO is the wire form of an App and the only shape exposed externally.
// The json tags own the wire renames; nothing below the transport layer sees
// them. Pointer fields let a partial update distinguish absent from empty.
type AppDTO struct {
	ID      *int64  `json:"id,omitempty"`
	Name    *string `json:"appName" validate:"required,min=1,max=20"`
	Author  *string `json:"devName" validate:"required,min=1"`
	Version *string `json:"appVersion" validate:"required,min=1"`
}

// ErrorDTO is the body returned for any failed request. HTTPStatus rides
// along for the transport layer and is never serialized.
type ErrorDTO struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Time       time.Time `json:"time"`
	Details    []string  `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
}
