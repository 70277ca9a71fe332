package nakama

import (
	"encoding/json"
	"fmt"

	"jassbot/internal/app"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// eventOpCodes maps broadcastable game events to op codes. Dealt hands are
// private to the bots and never leave the table.
var eventOpCodes = map[app.EventKind]int64{
	app.EventGameStarted:  OpGameStarted,
	app.EventTrumpfChosen: OpTrumpfChosen,
	app.EventCardPlayed:   OpCardPlayed,
	app.EventTrickWon:     OpTrickWon,
	app.EventGameEnded:    OpGameEnded,
}

var marshalOptions = protojson.MarshalOptions{EmitUnpopulated: true}

// eventToProto encodes the event payload as a google.protobuf.Struct so
// protobuf clients decode it with the well-known type.
func eventToProto(ev app.Event) (int64, *structpb.Struct, error) {
	op, ok := eventOpCodes[ev.Kind]
	if !ok {
		return 0, nil, fmt.Errorf("event %s is not broadcast", ev.Kind)
	}
	fields, err := toFields(ev.Payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s: %w", ev.Kind, err)
	}
	fields["kind"] = string(ev.Kind)
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s: %w", ev.Kind, err)
	}
	return op, msg, nil
}

// encodeEvent returns the op code and protojson bytes for ev.
func encodeEvent(ev app.Event) (int64, []byte, error) {
	op, msg, err := eventToProto(ev)
	if err != nil {
		return 0, nil, err
	}
	data, err := marshalOptions.Marshal(msg)
	if err != nil {
		return 0, nil, err
	}
	return op, data, nil
}

// toFields turns a JSON-tagged payload into the generic map structpb expects.
func toFields(payload any) (map[string]interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]interface{})
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// encodeLabel renders the match label queried by MatchList.
func encodeLabel(label map[string]interface{}) (string, error) {
	msg, err := structpb.NewStruct(label)
	if err != nil {
		return "", err
	}
	data, err := marshalOptions.Marshal(msg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
