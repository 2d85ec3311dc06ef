package dto

import "time"

type RegisterInput struct {
	Name     string
	Password string
}

type UserOutput struct {
	Name      string
	CreatedAt time.Time
}
