package models

import "time"

// User — подписчик сайта. Email хранится в нижнем регистре и уникален.
type User struct {
	UserName     string    `db:"user_name"     json:"userName"`
	Age          int       `db:"age"           json:"age"`
	Email        string    `db:"email"         json:"email"`
	Address      string    `db:"address"       json:"address"`
	PhoneNumber  string    `db:"phone_number"  json:"phoneNumber,omitempty"`
	Subscription string    `db:"subscription"  json:"subscription"`
	Timestamp    time.Time `db:"created_at"    json:"timestamp"`
	PasswordHash string    `db:"password_hash" json:"-"`
}

type SignupRequest struct {
	UserName     string `json:"userName"`
	Age          int    `json:"age"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	Subscription string `json:"subscription"`
	Password     string `json:"password,omitempty"`
}
