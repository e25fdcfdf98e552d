package common

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

const msgpackRationalSize = 16

func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

// UnmarshalJSON takes a quoted display string or a bare JSON number
// without exponent, null leaves r unchanged.
func (r *Rational) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		s = string(b)
	}
	return r.UnmarshalText([]byte(s))
}

func (r Rational) MarshalMsgpack() ([]byte, error) {
	buf := make([]byte, msgpackRationalSize)
	binary.BigEndian.PutUint64(buf[:8], uint64(r.p))
	binary.BigEndian.PutUint64(buf[8:], uint64(r.Denom()))
	return buf, nil
}

func (r *Rational) UnmarshalMsgpack(data []byte) error {
	if len(data) != msgpackRationalSize {
		return fmt.Errorf("invalid rational size %d", len(data))
	}
	n := int64(binary.BigEndian.Uint64(data[:8]))
	d := int64(binary.BigEndian.Uint64(data[8:]))
	v, err := New(n, d)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
