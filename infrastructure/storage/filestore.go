package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/nps-survey-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore guarda todas as coleções em um único documento JSON em disco,
// o análogo do localStorage do navegador. Assume um único escritor.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório do armazenamento")
	}

	return &FileStore{path: path}, nil
}

// Get lê o valor da chave. Arquivo ausente, ilegível ou corrompido devolve o
// fallback; falha de leitura nunca interrompe o fluxo do respondente.
func (s *FileStore) Get(_ context.Context, key string, fallback []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	document, err := s.load()
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("Falha na leitura do armazenamento, usando fallback")
		return fallback
	}

	value, ok := document[key]
	if !ok {
		return fallback
	}

	return value
}

// Set grava o valor da chave, reescrevendo o documento inteiro
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	document, err := s.load()
	if err != nil {
		// Documento corrompido: recomeça do zero em vez de falhar a escrita
		log.L.WithError(err).Warn("Documento de armazenamento ilegível, recriando")
		document = map[string]jsoniter.RawMessage{}
	}

	document[key] = jsoniter.RawMessage(value)

	payload, err := json.Marshal(document)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar documento de armazenamento")
	}

	// Escrita via arquivo temporário + rename para não truncar em caso de falha
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return errors.Wrap(err, "erro ao gravar documento de armazenamento")
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "erro ao publicar documento de armazenamento")
	}

	return nil
}

func (s *FileStore) load() (map[string]jsoniter.RawMessage, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]jsoniter.RawMessage{}, nil
		}
		return nil, err
	}

	document := map[string]jsoniter.RawMessage{}
	if err := json.Unmarshal(payload, &document); err != nil {
		return nil, err
	}

	return document, nil
}
