// messages.go defines the request and reply types of the IndexSafe service.
//
// The wire format is protobuf, as if generated from:
//
//	message GetRequest {
//	  string sequence_name = 1;
//	  repeated sint64 values = 2;
//	  bool inline = 3;
//	  sint64 index = 4;
//	}
//	message GetReply {
//	  string outcome = 1;
//	  sint64 value = 2;
//	  sint64 index = 3;
//	  int64 length = 4;
//	  string error = 5;
//	  uint64 index_unsigned = 6;
//	}
//	message SetSequenceRequest { string name = 1; repeated sint64 values = 2; }
//	message SetSequenceReply {}
//	message ListSequencesRequest {}
//	message SequenceInfo { string name = 1; int64 length = 2; }
//	message ListSequencesReply { repeated SequenceInfo sequences = 1; }
//	message GetStatsRequest {}
//	message GetStatsReply {
//	  uint64 value = 1;
//	  uint64 index_too_low = 2;
//	  uint64 index_too_high = 3;
//	}

package indexsafe_grpc

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Outcome values on the wire are the indexsafe.Outcome string forms.
const (
	OutcomeValue        = "value"
	OutcomeIndexTooLow  = "index_too_low"
	OutcomeIndexTooHigh = "index_too_high"
)

type GetRequest struct {
	// SequenceName selects a sequence registered on the server.
	SequenceName string `json:"sequence_name,omitempty"`
	// Values is an inline sequence; it takes precedence over SequenceName.
	Values []int64 `json:"values,omitempty"`
	// Inline distinguishes an empty inline sequence from "use SequenceName".
	Inline bool  `json:"inline,omitempty"`
	Index  int64 `json:"index"`
}

var _ Message = (*GetRequest)(nil)

func (x *GetRequest) GetSequenceName() string {
	if x == nil {
		return ""
	}
	return x.SequenceName
}

func (x *GetRequest) GetValues() []int64 {
	if x == nil {
		return nil
	}
	return x.Values
}

func (x *GetRequest) GetInline() bool {
	if x == nil {
		return false
	}
	return x.Inline || len(x.Values) > 0
}

func (x *GetRequest) GetIndex() int64 {
	if x == nil {
		return 0
	}
	return x.Index
}

func (x *GetRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.SequenceName)
	b = appendPackedSint64s(b, 2, x.Values)
	b = appendBool(b, 3, x.Inline)
	b = appendSint64(b, 4, x.Index)
	return b, nil
}

func (x *GetRequest) Unmarshal(b []byte) error {
	*x = GetRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.SequenceName)
		case 2:
			return consumeSint64s(typ, b, &x.Values)
		case 3:
			return consumeBool(typ, b, &x.Inline)
		case 4:
			return consumeSint64(typ, b, &x.Index)
		}
		return 0, errUnknownField
	})
}

type GetReply struct {
	Outcome string `json:"outcome"`
	Value   int64  `json:"value"`
	// Index is the requested index, clamped to math.MaxInt64.
	Index  int64  `json:"index"`
	Length int64  `json:"length"`
	Error  string `json:"error,omitempty"`
	// IndexUnsigned is the exact too-high index when it does not fit Index.
	IndexUnsigned uint64 `json:"index_unsigned,omitempty"`
}

var _ Message = (*GetReply)(nil)

func (x *GetReply) GetOutcome() string {
	if x == nil {
		return ""
	}
	return x.Outcome
}

func (x *GetReply) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.Outcome)
	b = appendSint64(b, 2, x.Value)
	b = appendSint64(b, 3, x.Index)
	b = appendInt64(b, 4, x.Length)
	b = appendString(b, 5, x.Error)
	b = appendUint64(b, 6, x.IndexUnsigned)
	return b, nil
}

func (x *GetReply) Unmarshal(b []byte) error {
	*x = GetReply{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Outcome)
		case 2:
			return consumeSint64(typ, b, &x.Value)
		case 3:
			return consumeSint64(typ, b, &x.Index)
		case 4:
			return consumeInt64(typ, b, &x.Length)
		case 5:
			return consumeString(typ, b, &x.Error)
		case 6:
			return consumeUint64(typ, b, &x.IndexUnsigned)
		}
		return 0, errUnknownField
	})
}

type SetSequenceRequest struct {
	Name   string  `json:"name"`
	Values []int64 `json:"values"`
}

var _ Message = (*SetSequenceRequest)(nil)

func (x *SetSequenceRequest) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *SetSequenceRequest) GetValues() []int64 {
	if x == nil {
		return nil
	}
	return x.Values
}

func (x *SetSequenceRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.Name)
	b = appendPackedSint64s(b, 2, x.Values)
	return b, nil
}

func (x *SetSequenceRequest) Unmarshal(b []byte) error {
	*x = SetSequenceRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Name)
		case 2:
			return consumeSint64s(typ, b, &x.Values)
		}
		return 0, errUnknownField
	})
}

type SetSequenceReply struct{}

func (*SetSequenceReply) Marshal() ([]byte, error) { return nil, nil }
func (x *SetSequenceReply) Unmarshal(b []byte) error {
	return unmarshalFields(b, skipAllFields)
}

type ListSequencesRequest struct{}

func (*ListSequencesRequest) Marshal() ([]byte, error) { return nil, nil }
func (x *ListSequencesRequest) Unmarshal(b []byte) error {
	return unmarshalFields(b, skipAllFields)
}

type SequenceInfo struct {
	Name   string `json:"name"`
	Length int64  `json:"length"`
}

var _ Message = (*SequenceInfo)(nil)

func (x *SequenceInfo) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.Name)
	b = appendInt64(b, 2, x.Length)
	return b, nil
}

func (x *SequenceInfo) Unmarshal(b []byte) error {
	*x = SequenceInfo{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Name)
		case 2:
			return consumeInt64(typ, b, &x.Length)
		}
		return 0, errUnknownField
	})
}

type ListSequencesReply struct {
	Sequences []SequenceInfo `json:"sequences"`
}

var _ Message = (*ListSequencesReply)(nil)

func (x *ListSequencesReply) Marshal() ([]byte, error) {
	var (
		b   []byte
		err error
	)
	for i := range x.Sequences {
		b, err = appendMessage(b, 1, &x.Sequences[i])
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (x *ListSequencesReply) Unmarshal(b []byte) error {
	*x = ListSequencesReply{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, errUnknownField
		}
		if err := expectType(typ, protowire.BytesType); err != nil {
			return 0, err
		}
		encoded, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		var info SequenceInfo
		if err := info.Unmarshal(encoded); err != nil {
			return 0, err
		}
		x.Sequences = append(x.Sequences, info)
		return n, nil
	})
}

type GetStatsRequest struct{}

func (*GetStatsRequest) Marshal() ([]byte, error) { return nil, nil }
func (x *GetStatsRequest) Unmarshal(b []byte) error {
	return unmarshalFields(b, skipAllFields)
}

type GetStatsReply struct {
	Value        uint64 `json:"value"`
	IndexTooLow  uint64 `json:"index_too_low"`
	IndexTooHigh uint64 `json:"index_too_high"`
}

var _ Message = (*GetStatsReply)(nil)

func (x *GetStatsReply) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, x.Value)
	b = appendUint64(b, 2, x.IndexTooLow)
	b = appendUint64(b, 3, x.IndexTooHigh)
	return b, nil
}

func (x *GetStatsReply) Unmarshal(b []byte) error {
	*x = GetStatsReply{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint64(typ, b, &x.Value)
		case 2:
			return consumeUint64(typ, b, &x.IndexTooLow)
		case 3:
			return consumeUint64(typ, b, &x.IndexTooHigh)
		}
		return 0, errUnknownField
	})
}
