package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador opaco para campanhas e respostas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// MustGenerateID gera um identificador ou entra em pânico (uso em factories)
func MustGenerateID() string {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		panic(err)
	}
	return id
}
