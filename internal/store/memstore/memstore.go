package memstore

import "errors"

// ErrClosed is returned after Close.
var ErrClosed = errors.New("memstore: closed")

// Store is an in-memory backend. Nothing survives the process.
type Store struct {
	data   map[string][]byte
	closed bool
}

func New() *Store {
	return &Store{data: map[string][]byte{}}
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	if s.closed {
		return nil, false, ErrClosed
	}
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *Store) Put(key string, value []byte) error {
	if s.closed {
		return ErrClosed
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Close() error {
	s.closed = true
	return nil
}
