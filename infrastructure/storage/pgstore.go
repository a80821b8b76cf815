package storage

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/nps-survey-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-survey-api/pkg/log"
)

const kvTable = "kv_store"

// PgStore guarda cada coleção como uma linha JSONB na tabela kv_store
type PgStore struct {
	conn postgres.Queryer
}

func NewPgStore(ctx context.Context, conn postgres.Queryer) (*PgStore, error) {
	if err := ensureSchema(ctx, conn); err != nil {
		return nil, err
	}

	return &PgStore{conn: conn}, nil
}

// Get lê o valor da chave; linha ausente ou erro de consulta devolve o fallback
func (s *PgStore) Get(ctx context.Context, key string, fallback []byte) []byte {
	query, args, err := squirrel.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("Erro ao construir consulta do kv_store, usando fallback")
		return fallback
	}

	var value []byte
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			log.L.WithError(err).WithField("key", key).Warn("Falha na leitura do kv_store, usando fallback")
		}
		return fallback
	}

	return value
}

// Set grava o valor da chave com upsert
func (s *PgStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := squirrel.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir upsert do kv_store")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao gravar no kv_store")
	}

	return nil
}
