package live

import (
	"testing"

	"github.com/coder/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

func TestCodecFor(t *testing.T) {
	if c := CodecFor(ProtoMsgpack); c.Name() != "msgpack" || c.MessageType() != websocket.MessageBinary {
		t.Fatalf("msgpack codec: %s", c.Name())
	}
	if c := CodecFor(""); c.Name() != "json" || c.MessageType() != websocket.MessageText {
		t.Fatalf("default codec: %s", c.Name())
	}
}

func TestJSONEvent(t *testing.T) {
	ev, err := jsonCodec{}.Decode([]byte(`{"w":"gallery","a":"open","i":0}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if i, ok := ev.index(); !ok || i != 0 || ev.Widget != "gallery" {
		t.Fatalf("index 0 must survive: %+v", ev)
	}
	if _, err := (jsonCodec{}).Decode([]byte(`{"w":`)); err == nil {
		t.Fatalf("expected error on truncated frame")
	}
}

func TestMsgpackEvent(t *testing.T) {
	b, err := msgpack.Marshal(map[string]any{"w": "nav", "a": "scroll", "y": 75.5})
	if err != nil {
		t.Fatal(err)
	}
	ev, err := msgpackCodec{}.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Widget != "nav" || ev.Y != 75.5 {
		t.Fatalf("event: %+v", ev)
	}
	if _, ok := ev.index(); ok {
		t.Fatalf("absent index must stay absent")
	}
}
