package chat

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

var noon = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestRoom_RelaysToOtherMembers(t *testing.T) {
	var out bytes.Buffer
	room := NewRoom(&out, WithClock(func() time.Time { return noon }))
	alice, bob, carol := NewUser("Alice"), NewUser("Bob"), NewUser("Carol")
	room.Join(alice)
	room.Join(bob)
	room.Join(carol)

	alice.Send("Hello")

	if len(alice.Inbox()) != 0 {
		t.Fatalf("sender should not receive its own message")
	}
	for _, u := range []*User{bob, carol} {
		in := u.Inbox()
		if len(in) != 1 || in[0].From != "Alice" || in[0].Text != "Hello" {
			t.Fatalf("%s: unexpected inbox %+v", u.Name(), in)
		}
	}
	if got := out.String(); got != "12:00:00 [Alice]: Hello\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestUser_WithoutRoomDropsMessage(t *testing.T) {
	u := NewUser("Alone")
	u.Send("anyone?")
	if len(u.Inbox()) != 0 {
		t.Fatalf("expected empty inbox")
	}
}

func TestRoom_IgnoresForeignSender(t *testing.T) {
	var out bytes.Buffer
	room := NewRoom(&out)
	room.Notify("not a user", "hi")
	if out.Len() != 0 {
		t.Fatalf("expected nothing printed, got %q", out.String())
	}
}

func TestDemo_Run(t *testing.T) {
	var out bytes.Buffer
	if err := NewDemo(nil, nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := out.String()
	for _, want := range []string{"14:30:00 [Alice]: Hello Bob!", "14:30:00 [Bob]: Hi Alice!", "Alice has 1 message(s), Bob has 1 message(s)"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
}
