package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost the stored hashes were created with.
const bcryptCost = 10

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(b), err
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
