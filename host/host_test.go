package host_test

import (
	"testing"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/host"
	"github.com/stretchr/testify/require"
)

// fixture bundles an object with its recorded traffic.
type fixture struct {
	obj   *host.Object
	rec   *host.Recorder
	diags *diag.Collector
	posts []string
}

// newFixture creates an object from creation text and taps every outlet.
func newFixture(t *testing.T, kind, args string) *fixture {
	t.Helper()
	f := &fixture{rec: &host.Recorder{}, diags: &diag.Collector{}}
	obj, err := host.New(kind, atom.ParseAtoms(args),
		host.WithReporter(f.diags),
		host.WithPoster(func(text string) { f.posts = append(f.posts, text) }))
	require.NoError(t, err)
	for i := 0; i < obj.Outlets(); i++ {
		require.NoError(t, obj.Connect(i, f.rec.Tap(kind, i)))
	}
	f.obj = obj

	return f
}

// send parses text and delivers it to inlet.
func (f *fixture) send(t *testing.T, inlet int, text string) {
	t.Helper()
	msg, err := atom.Parse(text)
	require.NoError(t, err)
	require.NoError(t, f.obj.Send(inlet, msg))
}

// take returns the recorded events and clears the recorder.
func (f *fixture) take() []host.Event {
	out := append([]host.Event(nil), f.rec.Events()...)
	f.rec.Reset()

	return out
}

func ints(vs ...int64) []atom.Atom {
	out := make([]atom.Atom, len(vs))
	for i, v := range vs {
		out[i] = atom.Int(v)
	}

	return out
}
