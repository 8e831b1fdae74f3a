package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
)

// InviteDriverRequest invitación de un chofer por parte de un manager.
type InviteDriverRequest struct {
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	EmailUser string `json:"email_user"`
	Phone     string `json:"num_user"`
	Country   string `json:"country"`
}

// InviteDriver crea la cuenta pendiente del chofer con un token de
// validación, le envía por correo los enlaces aceptar/rechazar y deja una
// notificación account_validation en la bandeja de los super admins.
func (uc *AuthUseCase) InviteDriver(managerID string, in InviteDriverRequest) (*dto.UserResponse, error) {
	manager, err := uc.userRepo.GetByID(managerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, err := uc.userRepo.FindByEmail(in.EmailUser)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	driver := &entity.User{
		ID:              uuid.New().String(),
		CompanyID:       manager.CompanyID,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.EmailUser,
		Phone:           in.Phone,
		Country:         in.Country,
		Role:            entity.RoleDriver,
		Status:          entity.StatusPending,
		ValidationToken: uuid.New().String(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(driver); err != nil {
		return nil, err
	}

	// El correo es best-effort: la cuenta pendiente queda creada y los
	// super admins pueden resolverla desde su bandeja.
	acceptLink := uc.baseURL + "/user/validate-driver/" + driver.ValidationToken + "/accept"
	refuseLink := uc.baseURL + "/user/validate-driver/" + driver.ValidationToken + "/refuse"
	_ = uc.mailer.SendDriverInvitation(driver.Email, acceptLink, refuseLink)

	admins, err := uc.userRepo.ListByRole(manager.CompanyID, entity.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	for _, admin := range admins {
		n := &entity.Notification{
			Recipient: admin.ID,
			Sender:    manager.ID,
			Type:      entity.NotifAccountValidation,
			Message:   manager.FullName() + " invitó al chofer " + driver.FullName(),
			Token:     driver.ValidationToken,
		}
		if err := uc.notifUC.Notify("new_notification", n); err != nil {
			return nil, err
		}
	}
	return toUserResponse(driver), nil
}

// ValidateDriver consume el token de invitación: accept activa la cuenta,
// refuse la elimina. En ambos casos se limpian las notificaciones ligadas
// al token.
func (uc *AuthUseCase) ValidateDriver(token, action string) error {
	if action != "accept" && action != "refuse" {
		return domain.ErrInvalidInput
	}
	driver, err := uc.userRepo.FindByValidationToken(token)
	if err != nil {
		return err
	}
	if driver == nil {
		return domain.ErrNotFound
	}
	if driver.Status != entity.StatusPending {
		return domain.ErrAlreadyResolved
	}

	if action == "accept" {
		driver.Status = entity.StatusActive
		driver.ValidationToken = ""
		driver.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(driver); err != nil {
			return err
		}
	} else {
		if err := uc.userRepo.Delete(driver.ID); err != nil {
			return err
		}
	}
	return uc.notifUC.DeleteByToken(token)
}
