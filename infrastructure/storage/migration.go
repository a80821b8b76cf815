package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/nps-survey-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-survey-api/pkg/log"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ensureSchema garante a tabela chave-valor na inicialização
func ensureSchema(ctx context.Context, conn postgres.Queryer) error {
	if _, err := conn.ExecContext(ctx, createKVTable); err != nil {
		return errors.Wrap(err, "erro ao criar tabela kv_store")
	}

	log.L.Debug("Esquema do kv_store verificado")
	return nil
}
