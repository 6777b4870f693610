package credential

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Параметры совместимы с хешами, уже лежащими в funcionarios.json.
const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
	keyLen  = 64
	saltLen = 16
)

type Hash struct {
	Hash string
	Salt string
}

// GenerateHash выводит ключ scrypt из пароля и новой случайной соли.
// В KDF идут байты hex-строки соли, а не сырые байты.
func GenerateHash(password string) (Hash, error) {
	const op = "service.credential.GenerateHash"

	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return Hash{}, fmt.Errorf("%s: ошибка генерации соли: %w", op, err)
	}
	salt := hex.EncodeToString(raw)

	key, err := derive(password, salt)
	if err != nil {
		return Hash{}, fmt.Errorf("%s: %w", op, err)
	}

	return Hash{Hash: hex.EncodeToString(key), Salt: salt}, nil
}

// VerifyPassword никогда не паникует: любая ошибка означает false.
func VerifyPassword(password, hash, salt string) bool {
	key, err := derive(password, salt)
	if err != nil {
		return false
	}

	got := hex.EncodeToString(key)
	if len(got) != len(hash) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(got), []byte(hash)) == 1
}

func derive(password, salt string) ([]byte, error) {
	return scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, keyLen)
}
