// Package chat relays user messages through a chat room mediator. Users never
// talk to each other directly.
package chat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/mediator"
)

// Message is what a member receives.
type Message struct {
	From string
	Text string
	At   time.Time
}

type User struct {
	mediator.Base[string]
	name  string
	inbox []Message
}

func NewUser(name string) *User {
	return &User{name: name}
}

func (u *User) Name() string { return u.name }

// Send posts text to the room.
func (u *User) Send(text string) { u.Changed(u, text) }

// Inbox returns the messages relayed to u so far.
func (u *User) Inbox() []Message {
	out := make([]Message, len(u.inbox))
	copy(out, u.inbox)
	return out
}

func (u *User) receive(m Message) { u.inbox = append(u.inbox, m) }

// Room is the mediator. It prints every message and hands it to the other
// members.
type Room struct {
	members []*User
	out     io.Writer
	now     func() time.Time
	log     *slog.Logger
}

type RoomOption func(*Room)

func WithClock(now func() time.Time) RoomOption {
	return func(r *Room) { r.now = now }
}

func WithLogger(l *slog.Logger) RoomOption {
	return func(r *Room) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRoom(out io.Writer, opts ...RoomOption) *Room {
	r := &Room{
		out: out,
		now: time.Now,
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Join adds u to the room.
func (r *Room) Join(u *User) {
	u.SetMediator(r)
	r.members = append(r.members, u)
}

func (r *Room) Notify(sender any, text string) {
	from, ok := sender.(*User)
	if !ok {
		r.log.Warn("chat.unknown_sender", "sender", fmt.Sprintf("%T", sender))
		return
	}
	m := Message{From: from.Name(), Text: text, At: r.now()}
	fmt.Fprintf(r.out, "%s [%s]: %s\n", m.At.Format(time.TimeOnly), m.From, m.Text)

	for _, u := range r.members {
		if u != from {
			u.receive(m)
		}
	}
	r.log.Debug("chat.relayed", "from", m.From, "members", len(r.members))
}

var _ mediator.Mediator[string] = (*Room)(nil)

type Demo struct {
	now func() time.Time
	log *slog.Logger
}

// NewDemo builds the chat demo. A nil clock means a fixed afternoon so the
// transcript is stable.
func NewDemo(now func() time.Time, log *slog.Logger) *Demo {
	if now == nil {
		fixed := time.Date(2024, 7, 1, 14, 30, 0, 0, time.UTC)
		now = func() time.Time { return fixed }
	}
	return &Demo{now: now, log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "mediator.chat",
		Pattern: "mediator",
		Summary: "Chat room relaying messages between users",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	room := NewRoom(out, WithClock(d.now), WithLogger(d.log))
	alice, bob := NewUser("Alice"), NewUser("Bob")
	room.Join(alice)
	room.Join(bob)

	alice.Send("Hello Bob!")
	if err := ctx.Err(); err != nil {
		return err
	}
	bob.Send("Hi Alice!")

	fmt.Fprintf(out, "Alice has %d message(s), Bob has %d message(s)\n", len(alice.Inbox()), len(bob.Inbox()))
	return nil
}
