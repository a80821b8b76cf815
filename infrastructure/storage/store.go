// Package storage fornece o armazenamento chave-valor persistente das coleções
// do sistema. Cada chave lógica guarda uma sequência JSON de entidades, com a
// ordem preservada.
package storage

import "context"

// Chaves lógicas das coleções persistidas
const (
	KeyCampaigns = "campaigns"
	KeyResponses = "responses"
)

// Store é o adaptador de persistência. A leitura nunca falha para o chamador:
// chave ausente ou erro de leitura devolvem o fallback informado. A escrita é
// síncrona e acontece a cada mutação de estado.
type Store interface {
	Get(ctx context.Context, key string, fallback []byte) []byte
	Set(ctx context.Context, key string, value []byte) error
}
