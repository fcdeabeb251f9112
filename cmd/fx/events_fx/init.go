package events_fx

import (
	"go.uber.org/fx"

	"pinpoint/pkg/events"
)

var Module = fx.Provide(
	providePublisher)

func providePublisher() events.Publisher {
	return events.NewRabbitPublisher()
}
