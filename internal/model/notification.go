package model

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	At      time.Time        `json:"at"`
}
