package leave

import (
	"time"

	"github.com/google/uuid"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/notification"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
)

// UseCase ciclo de los congés: el chofer solicita, los managers reciben una
// notificación leave_request accionable (token) y la resuelven.
type UseCase struct {
	leaveRepo repository.LeaveRepository
	userRepo  repository.UserRepository
	notifUC   *notification.UseCase
}

// NewUseCase construye el caso de uso de congés.
func NewUseCase(leaveRepo repository.LeaveRepository, userRepo repository.UserRepository, notifUC *notification.UseCase) *UseCase {
	return &UseCase{leaveRepo: leaveRepo, userRepo: userRepo, notifUC: notifUC}
}

// Request crea la solicitud pendiente y notifica a los managers de la
// empresa con el token de validación.
func (uc *UseCase) Request(driverID string, in dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	driver, err := uc.userRepo.GetByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	lr := &entity.LeaveRequest{
		ID:              uuid.New().String(),
		DriverID:        driver.ID,
		Reason:          in.Reason,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		ValidationToken: uuid.New().String(),
		Status:          entity.LeavePending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.leaveRepo.Create(lr); err != nil {
		return nil, err
	}

	managers, err := uc.userRepo.ListByRole(driver.CompanyID, entity.RoleManager)
	if err != nil {
		return nil, err
	}
	for _, m := range managers {
		n := &entity.Notification{
			Recipient: m.ID,
			Sender:    driver.ID,
			Type:      entity.NotifLeaveRequest,
			Message:   driver.FullName() + " solicita un congé del " + lr.StartDate.Format("02/01/2006") + " al " + lr.EndDate.Format("02/01/2006"),
			Token:     lr.ValidationToken,
		}
		if err := uc.notifUC.Notify("leave_request", n); err != nil {
			return nil, err
		}
	}
	return toResponse(lr), nil
}

// Validate consume el token (action: accept|reject), limpia las
// notificaciones ligadas y avisa al chofer del resultado.
func (uc *UseCase) Validate(token, action string) error {
	var status string
	switch action {
	case "accept":
		status = entity.LeaveAccepted
	case "reject":
		status = entity.LeaveRejected
	default:
		return domain.ErrInvalidInput
	}

	lr, err := uc.leaveRepo.FindByToken(token)
	if err != nil {
		return err
	}
	if lr == nil {
		return domain.ErrNotFound
	}
	if lr.Status != entity.LeavePending {
		return domain.ErrAlreadyResolved
	}
	if err := uc.leaveRepo.UpdateStatus(lr.ID, status); err != nil {
		return err
	}
	if err := uc.notifUC.DeleteByToken(token); err != nil {
		return err
	}

	msg := "Tu solicitud de congé fue aceptada"
	if status == entity.LeaveRejected {
		msg = "Tu solicitud de congé fue rechazada"
	}
	return uc.notifUC.Notify("new_notification", &entity.Notification{
		Recipient: lr.DriverID,
		Type:      entity.NotifGeneric,
		Message:   msg,
	})
}

// ListByDriver solicitudes de un chofer, paginadas.
func (uc *UseCase) ListByDriver(driverID string, page dto.PageRequest) ([]*dto.LeaveResponse, error) {
	page.DefaultPage()
	items, err := uc.leaveRepo.ListByDriver(driverID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LeaveResponse, 0, len(items))
	for _, lr := range items {
		out = append(out, toResponse(lr))
	}
	return out, nil
}

func toResponse(lr *entity.LeaveRequest) *dto.LeaveResponse {
	return &dto.LeaveResponse{
		ID:        lr.ID,
		DriverID:  lr.DriverID,
		Reason:    lr.Reason,
		StartDate: lr.StartDate,
		EndDate:   lr.EndDate,
		Status:    lr.Status,
		CreatedAt: lr.CreatedAt,
	}
}
