package live

import (
	"encoding/json"
	"fmt"

	"github.com/coder/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Subprotocols a client may negotiate. Without one, JSON text frames are used.
const (
	ProtoJSON    = "villa.json"
	ProtoMsgpack = "villa.msgpack"
)

// Event is a client interaction with one widget.
type Event struct {
	Widget string  `json:"w" msgpack:"w"`
	Action string  `json:"a" msgpack:"a"`
	Index  *int    `json:"i,omitempty" msgpack:"i,omitempty"`
	Value  string  `json:"v,omitempty" msgpack:"v,omitempty"`
	Y      float64 `json:"y,omitempty" msgpack:"y,omitempty"`
}

func (e Event) index() (int, bool) {
	if e.Index == nil {
		return 0, false
	}
	return *e.Index, true
}

// Patch replaces the element with id Target by HTML. An empty HTML removes
// it. When Navigate is set the client leaves the page instead.
type Patch struct {
	Target   string `json:"t,omitempty" msgpack:"t,omitempty"`
	HTML     string `json:"h" msgpack:"h"`
	Navigate string `json:"n,omitempty" msgpack:"n,omitempty"`
}

type Codec interface {
	Name() string
	MessageType() websocket.MessageType
	Encode(p Patch) ([]byte, error)
	Decode(b []byte) (Event, error)
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) MessageType() websocket.MessageType { return websocket.MessageText }
func (jsonCodec) Encode(p Patch) ([]byte, error)     { return json.Marshal(p) }
func (jsonCodec) Decode(b []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(b, &e); err != nil {
		return Event{}, fmt.Errorf("decode json event: %w", err)
	}
	return e, nil
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string                       { return "msgpack" }
func (msgpackCodec) MessageType() websocket.MessageType { return websocket.MessageBinary }
func (msgpackCodec) Encode(p Patch) ([]byte, error)     { return msgpack.Marshal(p) }
func (msgpackCodec) Decode(b []byte) (Event, error) {
	var e Event
	if err := msgpack.Unmarshal(b, &e); err != nil {
		return Event{}, fmt.Errorf("decode msgpack event: %w", err)
	}
	return e, nil
}

// CodecFor picks the codec matching a negotiated subprotocol.
func CodecFor(subprotocol string) Codec {
	if subprotocol == ProtoMsgpack {
		return msgpackCodec{}
	}
	return jsonCodec{}
}
