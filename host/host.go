package host

import "github.com/jsphweid/bartail/model"

// EventSink is the host facility events are produced into. SendAt tags an
// event with a future beat position; the host owns actual timed delivery.
type EventSink interface {
	SendNow(ev model.Event)
	SendAt(ev model.Event, beat float64)
}

// Logger is the host's plain-text log sink.
type Logger interface {
	Println(line string)
}
