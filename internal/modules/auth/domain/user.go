package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// User is an account row. PasswordHash is the hex sha256 of the password;
// accounts are local and single machine, the hash only keeps the raw password
// out of the database file.
type User struct {
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (u User) PasswordMatches(password string) bool {
	return u.PasswordHash == HashPassword(password)
}
