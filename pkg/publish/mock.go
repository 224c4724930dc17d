package publish

import (
	"context"

	"github.com/ipfs/go-cid"
)

// Mock is a Publisher for tests. It records what was pushed and stores nothing.
type Mock struct {
	Published map[string]string
	Err       error
}

func NewMock() *Mock {
	return &Mock{Published: map[string]string{}}
}

func (m *Mock) Has(ctx context.Context, id cid.Cid) (bool, error) {
	_, exists := m.Published[id.String()]
	return exists, nil
}

func (m *Mock) Publish(ctx context.Context, id cid.Cid, localPath string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Published[id.String()] = localPath
	return nil
}
