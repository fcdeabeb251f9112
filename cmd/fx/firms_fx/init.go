package firms_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pinpoint/internal/repositories"
	"pinpoint/internal/services"
	"pinpoint/pkg/events"
	"pinpoint/pkg/geocode"
	"pinpoint/pkg/utils"
)

var Module = fx.Provide(
	provideFirmRepo, providePhotoStore, provideFirmService)

func provideFirmRepo(db *gorm.DB) repositories.FirmRepository {
	return repositories.NewFirmRepository(db)
}

func providePhotoStore() utils.PhotoStore {
	return utils.NewDiskPhotoStore()
}

func provideFirmService(
	firmRepo repositories.FirmRepository,
	geocoder geocode.Client,
	publisher events.Publisher,
	photos utils.PhotoStore,
) services.FirmServiceInterface {
	return services.NewFirmService(firmRepo, geocoder, publisher, photos)
}
