// codec.go provides the protobuf codec the IndexSafe service is exchanged with.

package indexsafe_grpc

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content-subtype of the IndexSafe service.
const CodecName = "proto"

// Message is implemented by every request and reply of the IndexSafe
// service; the encoding is the protobuf wire format.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(b []byte) error
}

// codec replaces the default "proto" codec: IndexSafe messages are
// encoded by their own methods, any other proto.Message goes through
// google.golang.org/protobuf as before.
type codec struct{}

var _ encoding.Codec = codec{}

func init() {
	encoding.RegisterCodec(codec{})
}

func (codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.Marshal()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("unable to marshal %T: not a protobuf message", v)
	}
}

func (codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.Unmarshal(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("unable to unmarshal %T: not a protobuf message", v)
	}
}

func (codec) Name() string {
	return CodecName
}
