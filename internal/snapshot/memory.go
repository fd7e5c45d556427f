package snapshot

import (
	"context"
	"sync"

	"github.com/nikolayk812/shopcart/internal/domain"
)

// Memory keeps the snapshot in process memory, serialized through the same
// codec as the durable backends so corrupt-payload behavior stays uniform.
// Useful as a no-persistence fallback and in tests, where SaveErr injects
// write failures.
type Memory struct {
	mu      sync.Mutex
	payload []byte

	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.payload == nil {
		return domain.Cart{}, nil
	}

	cart, err := unmarshalCart(m.payload)
	if err != nil {
		return domain.Cart{}, nil
	}

	return cart, nil
}

func (m *Memory) Save(_ context.Context, cart domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}

	payload, err := marshalCart(cart)
	if err != nil {
		return err
	}

	m.payload = payload
	return nil
}

// Corrupt overwrites the stored payload with bytes that will not parse.
func (m *Memory) Corrupt() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payload = []byte("{not json")
}
