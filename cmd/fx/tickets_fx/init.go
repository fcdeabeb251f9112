package tickets_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pinpoint/internal/repositories"
	"pinpoint/internal/services"
)

var Module = fx.Provide(
	provideTicketRepo, provideTicketService)

func provideTicketRepo(db *gorm.DB) repositories.SupportTicketRepository {
	return repositories.NewSupportTicketRepository(db)
}

func provideTicketService(ticketRepo repositories.SupportTicketRepository) services.SupportTicketServiceInterface {
	return services.NewSupportTicketService(ticketRepo)
}
