package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/observer"
)

type Topic string

const (
	TopicDeals    Topic = "deals"
	TopicArrivals Topic = "arrivals"
	TopicRecalls  Topic = "recalls"
)

// Newsletter publishes headlines per topic.
type Newsletter struct {
	topics *observer.Topics[Topic, string]
	out    io.Writer
}

func NewNewsletter(out io.Writer) *Newsletter {
	return &Newsletter{topics: observer.NewTopics[Topic, string](), out: out}
}

// Follow registers reader for topic.
func (n *Newsletter) Follow(reader string, topic Topic) observer.Subscription[Topic] {
	return n.topics.On(topic, func(headline string) {
		fmt.Fprintf(n.out, "%s got %s: %s\n", reader, topic, headline)
	})
}

func (n *Newsletter) Unfollow(sub observer.Subscription[Topic]) { n.topics.Off(sub) }

// Publish returns the number of readers reached.
func (n *Newsletter) Publish(topic Topic, headline string) int {
	reached := n.topics.Publish(topic, headline)
	fmt.Fprintf(n.out, "[%s] %q reached %d reader(s)\n", topic, headline, reached)
	return reached
}

type TopicsDemo struct {
	log *slog.Logger
}

func NewTopicsDemo(log *slog.Logger) *TopicsDemo {
	return &TopicsDemo{log: log}
}

func (d *TopicsDemo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "observer.topics",
		Pattern: "observer",
		Summary: "Newsletter readers following individual topics",
	}
}

func (d *TopicsDemo) Run(ctx context.Context, out io.Writer) error {
	n := NewNewsletter(out)
	aliceDeals := n.Follow("Alice", TopicDeals)
	n.Follow("Bob", TopicDeals)
	n.Follow("Bob", TopicArrivals)

	n.Publish(TopicDeals, "20% off headphones")
	n.Publish(TopicArrivals, "New tablets in stock")
	n.Publish(TopicRecalls, "Charger batch 42")

	if err := ctx.Err(); err != nil {
		return err
	}

	n.Unfollow(aliceDeals)
	n.Publish(TopicDeals, "Free shipping weekend")
	return nil
}
