package host

import "github.com/jsphweid/bartail/model"

// Scheduled is one deferred event as a Recorder saw it.
type Scheduled struct {
	Event model.Event
	Beat  float64
}

// Recorder is an in-memory EventSink for tests and offline simulation.
type Recorder struct {
	Immediate []model.Event
	Deferred  []Scheduled
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SendNow(ev model.Event) {
	r.Immediate = append(r.Immediate, ev)
}

func (r *Recorder) SendAt(ev model.Event, beat float64) {
	r.Deferred = append(r.Deferred, Scheduled{Event: ev, Beat: beat})
}

// MemoryLog is an in-memory Logger.
type MemoryLog struct {
	Lines []string
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (m *MemoryLog) Println(line string) {
	m.Lines = append(m.Lines, line)
}
