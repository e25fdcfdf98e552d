package common

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v4"
)

// PayloadVersion prefixes every stored payload, the rest is a zstd frame
// of compact msgpack.
var PayloadVersion = []byte{0, 0, 0, 0}

var (
	payloadEncoder *zstd.Encoder
	payloadDecoder *zstd.Decoder
)

func init() {
	msgpack.RegisterExt(1, (*Rational)(nil))

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	payloadEncoder, payloadDecoder = enc, dec
}

// EncodePayload panics when val has no msgpack encoding, which only
// happens for programming errors.
func EncodePayload(val interface{}) []byte {
	var buf bytes.Buffer
	err := msgpack.NewEncoder(&buf).UseCompactEncoding(true).Encode(val)
	if err != nil {
		panic(fmt.Errorf("EncodePayload(%T) => %v", val, err))
	}
	out := append([]byte{}, PayloadVersion...)
	return payloadEncoder.EncodeAll(buf.Bytes(), out)
}

func DecodePayload(data []byte, val interface{}) error {
	header := len(PayloadVersion)
	if len(data) < header {
		return fmt.Errorf("DecodePayload: short payload %x", data)
	}
	if !bytes.Equal(data[:header], PayloadVersion) {
		return fmt.Errorf("DecodePayload: unknown payload version %x", data[:header])
	}
	raw, err := payloadDecoder.DecodeAll(data[header:], nil)
	if err != nil {
		return fmt.Errorf("DecodePayload: %w", err)
	}
	err = msgpack.Unmarshal(raw, val)
	if err != nil {
		return fmt.Errorf("DecodePayload(%T): %w", val, err)
	}
	return nil
}
