package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/bartail/engine"
	"github.com/jsphweid/bartail/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var serveReport reportFlags
var serveTail tailFlags
var serveBpm float64
var serveMeterNum int
var serveMeterDen int
var serveInPort int
var serveAddr string

const maxRecentBars = 64

func init() {
	serveReport.register(serveCmd)
	serveTail.register(serveCmd)
	serveCmd.Flags().Float64Var(&serveBpm, "bpm", 120, "tempo for the beat clock")
	serveCmd.Flags().IntVar(&serveMeterNum, "meter-num", 4, "meter numerator")
	serveCmd.Flags().IntVar(&serveMeterDen, "meter-den", 4, "meter denominator")
	serveCmd.Flags().IntVar(&serveInPort, "in", 0, "MIDI input port number")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves recent bar chord reports over HTTP",
	Long:  `Listens to a MIDI input and serves the most recent bar chord reports over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

type statusResponse struct {
	Session   string `json:"session"`
	HeldNotes int    `json:"held_notes"`
	Bars      int    `json:"bars"`
}

func serve() {
	defer midi.CloseDriver()

	in, err := midi.InPort(serveInPort)
	if err != nil {
		fmt.Println("can't find MIDI input port")
		return
	}

	session := uuid.New().String()
	clock := beatClock{start: time.Now(), bpm: serveBpm}
	sink := &midiSink{clock: clock}
	proc := engine.NewProcessor(sink, consoleLog{}, serveReport.options(), serveTail.params())

	var mu sync.Mutex
	var recent []model.BarSummary
	proc.SetFlushHook(func(s model.BarSummary) {
		recent = append(recent, s)
		if len(recent) > maxRecentBars {
			recent = recent[len(recent)-maxRecentBars:]
		}
	})

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		var ev model.Event
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			ev = model.Event{Kind: model.NoteOn, Pitch: key, Velocity: vel, Channel: ch}
		case msg.GetNoteEnd(&ch, &key):
			ev = model.Event{Kind: model.NoteOff, Pitch: key, Channel: ch}
		default:
			return
		}
		ev.BeatPos = clock.now()
		ev.HasBeat = true

		mu.Lock()
		proc.OnEvent(ev)
		mu.Unlock()
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	go func() {
		ticker := time.NewTicker(25 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			proc.OnTick(model.TransportSnapshot{
				IsPlaying:        true,
				BlockStartBeat:   clock.now(),
				MeterNumerator:   serveMeterNum,
				MeterDenominator: serveMeterDen,
			})
			mu.Unlock()
		}
	}()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/bars", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		out := make([]model.BarSummary, len(recent))
		copy(out, recent)
		mu.Unlock()
		json.NewEncoder(w).Encode(out)
	}).Methods("GET")
	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		res := statusResponse{Session: session, HeldNotes: proc.HeldNotes(), Bars: len(recent)}
		mu.Unlock()
		json.NewEncoder(w).Encode(res)
	}).Methods("GET")

	log.Fatal(http.ListenAndServe(serveAddr, cors.Default().Handler(router)))
}
