package utils

import "golang.org/x/crypto/bcrypt"

// Пароли нигде не хранятся и не сравниваются открытым текстом —
// только bcrypt-хеши.

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), 12)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
