package ordercache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"quanngon-be/internal/order"
)

// FilePersister writes the cache as a JSON document under the data dir,
// one file per session.
type FilePersister struct {
	path string
}

func NewFilePersister(dir, sessionID string) *FilePersister {
	return &FilePersister{path: filepath.Join(dir, "orders-"+sessionID+".json")}
}

func (p *FilePersister) Save(orders []*order.APIOrder) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// Load restores a previously persisted session, if any.
func (p *FilePersister) Load() ([]*order.APIOrder, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []*order.APIOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
