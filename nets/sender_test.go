package nets

import (
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/linecast/modes"
)

func TestSendRecv(t *testing.T) {
	*groupFlag = "239.255.76.67"
	*portFlag = 45067
	t.Cleanup(func() {
		*groupFlag = ""
		*portFlag = 0
	})

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newSender NewSender,
		newReceiver NewReceiver,
	) {
		ctx := t.Context()

		receiver, err := newReceiver(ctx)
		if err != nil {
			// no multicast-capable interface here
			t.Skipf("receiver: %v", err)
		}
		defer receiver.Close()

		sender, err := newSender(ctx)
		if err != nil {
			t.Fatal(err)
		}
		defer sender.Close()

		payload := []byte(`{"hello":"world"}`)
		done := make(chan struct{})
		go func() {
			defer close(done)
			got, from, err := receiver.Recv()
			if err != nil {
				t.Errorf("recv: %v", err)
				return
			}
			if string(got) != string(payload) {
				t.Errorf("got %q", got)
			}
			if from == nil {
				t.Error("no sender address")
			}
		}()

		// loopback delivery can race the group join, retry a few sends
		for range 20 {
			if err := sender.Send(ctx, payload); err != nil {
				t.Fatal(err)
			}
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
			}
		}
		t.Skip("no loopback delivery")
	})
}
