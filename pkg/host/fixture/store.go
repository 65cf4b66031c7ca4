package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/orneryd/bifrost/pkg/host"
)

// Store keeps imported fixtures in a badger database so repeated runs
// against the same fixture skip the YAML parse. Keys are laid out as
// fixture:<name>:node:<id> and fixture:<name>:edge:<id>, with JSON values.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) a fixture store at dir. An empty dir opens
// an in-memory store, used by tests.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func nodeKey(fixture string, id int64) []byte {
	return []byte(fmt.Sprintf("fixture:%s:node:%020d", fixture, id))
}

func edgeKey(fixture string, id int64) []byte {
	return []byte(fmt.Sprintf("fixture:%s:edge:%020d", fixture, id))
}

func fixturePrefix(fixture string) []byte {
	return []byte("fixture:" + fixture + ":")
}

// Save writes the fixture under its name, replacing any previous content.
func (s *Store) Save(name string, f *File) error {
	if name == "" {
		return errors.New("fixture name is required")
	}
	if err := s.Delete(name); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, n := range f.Nodes {
			data, err := json.Marshal(n)
			if err != nil {
				return fmt.Errorf("failed to encode node %d: %w", n.ID, err)
			}
			if err := txn.Set(nodeKey(name, n.ID), data); err != nil {
				return err
			}
		}
		for _, e := range f.Edges {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to encode edge %d: %w", e.ID, err)
			}
			if err := txn.Set(edgeKey(name, e.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// ErrNotFound reports a fixture name with no stored content.
var ErrNotFound = errors.New("fixture not found")

// Get reads a stored fixture back.
func (s *Store) Get(name string) (*File, error) {
	f := &File{Name: name}
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := fixturePrefix(name)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(data []byte) error {
				switch {
				case strings.Contains(key, ":node:"):
					var n host.Node
					if err := json.Unmarshal(data, &n); err != nil {
						return fmt.Errorf("corrupt node at %s: %w", key, err)
					}
					f.Nodes = append(f.Nodes, &n)
				case strings.Contains(key, ":edge:"):
					var e host.Edge
					if err := json.Unmarshal(data, &e); err != nil {
						return fmt.Errorf("corrupt edge at %s: %w", key, err)
					}
					f.Edges = append(f.Edges, &e)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(f.Nodes) == 0 && len(f.Edges) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return f, nil
}

// Delete removes every key of the named fixture.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()
		prefix := fixturePrefix(name)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns the names of stored fixtures.
func (s *Store) List() ([]string, error) {
	seen := make(map[string]struct{})
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()
		prefix := []byte("fixture:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			rest := strings.TrimPrefix(key, "fixture:")
			name, _, ok := strings.Cut(rest, ":")
			if !ok {
				continue
			}
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
