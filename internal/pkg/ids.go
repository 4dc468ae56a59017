package pkg

import (
	"fmt"

	"github.com/google/uuid"
)

func GenerateGameID() (string, error) {
	return newID()
}

func GenerateNewSessionID() (string, error) {
	return newID()
}

func newID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}

	return id.String(), nil
}
