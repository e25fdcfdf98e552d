package storage

import "github.com/MixinNetwork/rational/common"

type Register struct {
	Name  string          `json:"name"`
	Value common.Rational `json:"value"`
}

type Store interface {
	Close() error

	WriteValue(name string, v common.Rational) (string, error)
	ReadValue(name string) (*common.Rational, error)
	RemoveValue(name string) error
	ListValues(prefix string) ([]*Register, error)

	WriteSequence(name string, seq []common.Rational) (string, error)
	ReadSequence(name string) ([]common.Rational, error)
}
