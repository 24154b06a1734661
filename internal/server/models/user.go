package models

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	Salt         []byte
	CreatedAt    time.Time
}
