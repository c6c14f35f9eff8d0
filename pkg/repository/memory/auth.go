package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

type tokenStore struct {
	mu     sync.RWMutex
	tokens map[types.TokenID]*model.Token
}

func newTokenStore() *tokenStore {
	return &tokenStore{
		tokens: make(map[types.TokenID]*model.Token),
	}
}

func (m *Memory) PutToken(ctx context.Context, token *model.Token) error {
	if token == nil || token.ID == "" {
		return goerr.New("invalid token")
	}

	m.tokens.mu.Lock()
	defer m.tokens.mu.Unlock()

	m.tokens.tokens[token.ID] = token
	return nil
}

func (m *Memory) GetToken(ctx context.Context, tokenID types.TokenID) (*model.Token, error) {
	m.tokens.mu.RLock()
	defer m.tokens.mu.RUnlock()

	token, ok := m.tokens.tokens[tokenID]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "token not found")
	}

	return token, nil
}

func (m *Memory) DeleteToken(ctx context.Context, tokenID types.TokenID) error {
	m.tokens.mu.Lock()
	defer m.tokens.mu.Unlock()

	if _, ok := m.tokens.tokens[tokenID]; !ok {
		return goerr.Wrap(ErrNotFound, "token not found")
	}

	delete(m.tokens.tokens, tokenID)
	return nil
}
