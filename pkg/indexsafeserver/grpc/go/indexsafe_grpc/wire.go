// wire.go provides helpers to read and write the protobuf wire format.

package indexsafe_grpc

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var errUnknownField = errors.New("unknown field")

type fieldConsumer func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// unmarshalFields calls fn for every field in b; fields fn reports as
// errUnknownField are skipped.
func unmarshalFields(b []byte, fn fieldConsumer) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("unable to parse a tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if errors.Is(err, errUnknownField) {
			n, err = protowire.ConsumeFieldValue(num, typ, b), nil
		}
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func expectType(typ, expected protowire.Type) error {
	if typ != expected {
		return fmt.Errorf("unexpected wire type %d, expected %d", typ, expected)
	}
	return nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	if err := expectType(typ, protowire.BytesType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeString(b)
	if n >= 0 {
		*dst = v
	}
	return n, nil
}

func consumeUint64(typ protowire.Type, b []byte, dst *uint64) (int, error) {
	if err := expectType(typ, protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = v
	}
	return n, nil
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) (int, error) {
	var v uint64
	n, err := consumeUint64(typ, b, &v)
	*dst = int64(v)
	return n, err
}

func consumeSint64(typ protowire.Type, b []byte, dst *int64) (int, error) {
	var v uint64
	n, err := consumeUint64(typ, b, &v)
	*dst = protowire.DecodeZigZag(v)
	return n, err
}

func consumeBool(typ protowire.Type, b []byte, dst *bool) (int, error) {
	var v uint64
	n, err := consumeUint64(typ, b, &v)
	*dst = protowire.DecodeBool(v)
	return n, err
}

// consumeSint64s accepts both the packed and the unpacked encoding.
func consumeSint64s(typ protowire.Type, b []byte, dst *[]int64) (int, error) {
	switch typ {
	case protowire.VarintType:
		var v int64
		n, err := consumeSint64(typ, b, &v)
		if err == nil && n >= 0 {
			*dst = append(*dst, v)
		}
		return n, err
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return m, nil
			}
			*dst = append(*dst, protowire.DecodeZigZag(v))
			packed = packed[m:]
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected wire type %d for a repeated integer", typ)
	}
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	return appendUint64(b, num, uint64(v))
}

func appendSint64(b []byte, num protowire.Number, v int64) []byte {
	return appendUint64(b, num, protowire.EncodeZigZag(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendUint64(b, num, protowire.EncodeBool(v))
}

func appendPackedSint64s(b []byte, num protowire.Number, values []int64) []byte {
	if len(values) == 0 {
		return b
	}
	var packed []byte
	for _, v := range values {
		packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendMessage(b []byte, num protowire.Number, m Message) ([]byte, error) {
	encoded, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, encoded), nil
}

func skipAllFields(protowire.Number, protowire.Type, []byte) (int, error) {
	return 0, errUnknownField
}
