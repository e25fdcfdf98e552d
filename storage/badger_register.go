package storage

import (
	"fmt"
	"regexp"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/logger"
	"github.com/dgraph-io/badger/v3"
	"github.com/gofrs/uuid"
)

const (
	registersPrefixValue    = "VALUE"
	registersPrefixSequence = "SEQUENCE"
)

var registerNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

func (s *BadgerStore) WriteValue(name string, v common.Rational) (string, error) {
	name, err := registerName(name)
	if err != nil {
		return "", err
	}
	key := registerValueKey(name)
	val := common.EncodePayload(v)
	err = s.write(key, val)
	if err != nil {
		return "", err
	}
	logger.Debugf("WriteValue(%s) => %s\n", name, v)
	return name, nil
}

func (s *BadgerStore) ReadValue(name string) (*common.Rational, error) {
	val, err := s.read(registerValueKey(name))
	if err != nil || val == nil {
		return nil, err
	}
	var v common.Rational
	err = common.DecodePayload(val, &v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *BadgerStore) RemoveValue(name string) error {
	key := registerValueKey(name)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return err
	}
	s.cache.Del(key)
	return nil
}

func (s *BadgerStore) ListValues(prefix string) ([]*Register, error) {
	registers := make([]*Register, 0)
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	seek := registerValueKey(prefix)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = seek
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(seek); it.ValidForPrefix(seek); it.Next() {
		item := it.Item()
		val, err := item.ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		r := &Register{Name: string(item.Key()[len(registersPrefixValue):])}
		err = common.DecodePayload(val, &r.Value)
		if err != nil {
			return nil, err
		}
		registers = append(registers, r)
	}
	return registers, nil
}

func (s *BadgerStore) WriteSequence(name string, seq []common.Rational) (string, error) {
	name, err := registerName(name)
	if err != nil {
		return "", err
	}
	val := common.EncodePayload(seq)
	err = s.write(registerSequenceKey(name), val)
	if err != nil {
		return "", err
	}
	logger.Debugf("WriteSequence(%s) => %d\n", name, len(seq))
	return name, nil
}

func (s *BadgerStore) ReadSequence(name string) ([]common.Rational, error) {
	val, err := s.read(registerSequenceKey(name))
	if err != nil || val == nil {
		return nil, err
	}
	var seq []common.Rational
	err = common.DecodePayload(val, &seq)
	return seq, err
}

func (s *BadgerStore) write(key, val []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
	if err != nil {
		return err
	}
	s.cache.Set(key, val)
	return nil
}

func (s *BadgerStore) read(key []byte) ([]byte, error) {
	if val, found := s.cache.HasGet(nil, key); found {
		return val, nil
	}

	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, val)
	return val, nil
}

// registerName assigns a random name to anonymous registers.
func registerName(name string) (string, error) {
	if name == "" {
		return uuid.Must(uuid.NewV4()).String(), nil
	}
	if !registerNamePattern.MatchString(name) {
		return "", fmt.Errorf("invalid register name %q", name)
	}
	return name, nil
}

func registerValueKey(name string) []byte {
	return append([]byte(registersPrefixValue), name...)
}

func registerSequenceKey(name string) []byte {
	return append([]byte(registersPrefixSequence), name...)
}
