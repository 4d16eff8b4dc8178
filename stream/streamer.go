package stream

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/animtx/anim"
)

// Streamer streams RGB data frames to an ledrx device, rendering one frame
// per tick of its frame clock.
type Streamer struct {
	client     mqtt.Client
	clock      anim.Clock
	topic      string
	controller *Controller
	startTime  time.Time
	sub        anim.Subscription
	done       chan struct{}
	stopped    bool
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, clock anim.Clock) *Streamer {
	s := new(Streamer)
	s.client = client
	s.clock = clock
	s.topic = config.Mqtt.Topic
	s.controller = NewController(config, clock)
	s.done = make(chan struct{})

	return s
}

// sendFrame renders the next frame and publishes it as binary over MQTT.
func (s *Streamer) sendFrame(now time.Time) {
	runtimeMs := now.Sub(s.startTime).Milliseconds()
	f := s.controller.CalculateFrame(runtimeMs)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send frames continuously until Stop is called.
// Running an already-stopped Streamer is a no-op.
func (s *Streamer) Run() {
	if s.stopped {
		return
	}

	s.startTime = s.clock.Now()
	s.sub = s.clock.Subscribe(s.sendFrame)
	<-s.done
}

// Stop releases the frame-clock subscription and unblocks Run. It is safe to
// call at any point, including before Run and repeatedly.
func (s *Streamer) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true

	if s.sub != nil {
		s.sub.Cancel()
	}
	close(s.done)
}
