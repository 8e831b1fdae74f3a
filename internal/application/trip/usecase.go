package trip

import (
	"time"

	"github.com/google/uuid"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/notification"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
)

// UseCase asignación y validación de viajes. El manager asigna; el super
// admin valida desde la notificación driver_assignment (relatedEntity lleva
// el id del viaje).
type UseCase struct {
	tripRepo repository.TripRepository
	userRepo repository.UserRepository
	notifUC  *notification.UseCase
}

// NewUseCase construye el caso de uso de viajes.
func NewUseCase(tripRepo repository.TripRepository, userRepo repository.UserRepository, notifUC *notification.UseCase) *UseCase {
	return &UseCase{tripRepo: tripRepo, userRepo: userRepo, notifUC: notifUC}
}

// Assign crea el viaje en estado pending y notifica: driver_assignment a los
// super admins (accionable, con el viaje como relatedEntity) y un aviso
// simple al chofer.
func (uc *UseCase) Assign(managerID string, in dto.CreateTripRequest) (*dto.TripResponse, error) {
	manager, err := uc.userRepo.GetByID(managerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrUserNotFound
	}
	driver, err := uc.userRepo.GetByID(in.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil || driver.Role != entity.RoleDriver {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	trip := &entity.Trip{
		ID:          uuid.New().String(),
		CompanyID:   manager.CompanyID,
		DriverID:    driver.ID,
		ManagerID:   manager.ID,
		Departure:   in.Departure,
		Destination: in.Destination,
		DistanceKm:  in.DistanceKm,
		Cost:        in.Cost,
		Status:      entity.TripPending,
		StartsAt:    in.StartsAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tripRepo.Create(trip); err != nil {
		return nil, err
	}

	admins, err := uc.userRepo.ListByRole(manager.CompanyID, entity.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	for _, admin := range admins {
		n := &entity.Notification{
			Recipient:     admin.ID,
			Sender:        manager.ID,
			Type:          entity.NotifDriverAssignment,
			Message:       manager.FullName() + " asignó un viaje " + trip.Departure + " → " + trip.Destination + " a " + driver.FullName(),
			RelatedEntity: trip.ID,
		}
		if err := uc.notifUC.Notify("driver_assignment", n); err != nil {
			return nil, err
		}
	}

	aviso := &entity.Notification{
		Recipient: driver.ID,
		Sender:    manager.ID,
		Type:      entity.NotifGeneric,
		Message:   "Nuevo viaje asignado: " + trip.Departure + " → " + trip.Destination,
	}
	if err := uc.notifUC.Notify("new_notification", aviso); err != nil {
		return nil, err
	}

	return toResponse(trip), nil
}

// Validate resuelve un viaje pendiente (action: accept|refuse) y avisa al
// chofer del resultado. Un viaje ya resuelto devuelve ErrAlreadyResolved.
func (uc *UseCase) Validate(tripID, action string) error {
	var status string
	switch action {
	case "accept":
		status = entity.TripAccepted
	case "refuse":
		status = entity.TripRefused
	default:
		return domain.ErrInvalidInput
	}

	trip, err := uc.tripRepo.GetByID(tripID)
	if err != nil {
		return err
	}
	if trip == nil {
		return domain.ErrNotFound
	}
	if trip.Status != entity.TripPending {
		return domain.ErrAlreadyResolved
	}
	if err := uc.tripRepo.UpdateStatus(tripID, status); err != nil {
		return err
	}

	msg := "Tu viaje " + trip.Departure + " → " + trip.Destination + " fue aceptado"
	if status == entity.TripRefused {
		msg = "Tu viaje " + trip.Departure + " → " + trip.Destination + " fue rechazado"
	}
	return uc.notifUC.Notify("new_notification", &entity.Notification{
		Recipient: trip.DriverID,
		Type:      entity.NotifGeneric,
		Message:   msg,
	})
}

// ListByDriver viajes de un chofer, paginados.
func (uc *UseCase) ListByDriver(driverID string, page dto.PageRequest) ([]*dto.TripResponse, error) {
	page.DefaultPage()
	trips, err := uc.tripRepo.ListByDriver(driverID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toResponse(t))
	}
	return out, nil
}

func toResponse(t *entity.Trip) *dto.TripResponse {
	return &dto.TripResponse{
		ID:          t.ID,
		DriverID:    t.DriverID,
		ManagerID:   t.ManagerID,
		Departure:   t.Departure,
		Destination: t.Destination,
		DistanceKm:  t.DistanceKm,
		Cost:        t.Cost,
		Status:      t.Status,
		StartsAt:    t.StartsAt,
		CreatedAt:   t.CreatedAt,
	}
}
