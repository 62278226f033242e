package schedule

import (
	"context"
	"time"

	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

// Store é o contrato de persistência do motor de agenda. As operações de
// mutação rodam dentro de InTx; GetProfessionalForUpdate trava a linha do
// profissional e serializa check-then-insert concorrentes sobre a mesma
// agenda.
type Store interface {
	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProfessionalForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	UpdateProfessional(
		ctx context.Context,
		pro *models.Professional,
	) error

	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Conflict checks --------
	HasAppointmentConflict(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	HasBlockConflict(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Appointment --------
	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForProfessional(
		ctx context.Context,
		appointmentID uint,
		professionalID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindCommittedAppointments(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Block --------
	SaveBlock(
		ctx context.Context,
		b *models.Block,
	) error

	GetBlock(
		ctx context.Context,
		id uint,
	) (*models.Block, error)

	DeleteBlock(
		ctx context.Context,
		id uint,
	) error

	FindBlocks(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Block, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Unit of work --------
	InTx(
		ctx context.Context,
		fn func(Store) error,
	) error
}
