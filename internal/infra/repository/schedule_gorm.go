package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type ScheduleGormStore struct {
	db *gorm.DB
}

func NewScheduleGormStore(db *gorm.DB) *ScheduleGormStore {
	return &ScheduleGormStore{db: db}
}

// committedStatuses cobre os status que ocupam agenda.
func committedStatuses() []string {
	out := make([]string, len(schedule.CommittedStatuses))
	for i, s := range schedule.CommittedStatuses {
		out[i] = string(s)
	}
	return out
}

func asNotFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(entity)
	}
	return err
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *ScheduleGormStore) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).First(&pro, id).Error; err != nil {
		return nil, asNotFound(err, "professional")
	}
	return &pro, nil
}

// GetProfessionalForUpdate trava a linha do profissional; é o que
// serializa check-then-insert concorrentes sobre a mesma agenda.
func (r *ScheduleGormStore) GetProfessionalForUpdate(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&pro, id).Error; err != nil {
		return nil, asNotFound(err, "professional")
	}
	return &pro, nil
}

func (r *ScheduleGormStore) UpdateProfessional(
	ctx context.Context,
	pro *models.Professional,
) error {
	return r.db.WithContext(ctx).Save(pro).Error
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ScheduleGormStore) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, asNotFound(err, "client")
	}
	return &client, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (r *ScheduleGormStore) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	phone = digitsOnly(phone)
	email = strings.ToLower(strings.TrimSpace(email))

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ? OR email = ?", phone, email).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormStore) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, asNotFound(err, "service")
	}
	return &service, nil
}

// --------------------------------------------------
// Conflict checks
// --------------------------------------------------

func (r *ScheduleGormStore) HasAppointmentConflict(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"professional_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			professionalID,
			committedStatuses(),
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ScheduleGormStore) HasBlockConflict(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where(
			"professional_id = ? AND start_time < ? AND end_time > ?",
			professionalID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ScheduleGormStore) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ScheduleGormStore) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, asNotFound(err, "appointment")
	}
	return &ap, nil
}

func (r *ScheduleGormStore) GetAppointmentForProfessional(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		First(&ap).Error; err != nil {
		return nil, asNotFound(err, "appointment")
	}

	return &ap, nil
}

func (r *ScheduleGormStore) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormStore) FindCommittedAppointments(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"professional_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			professionalID,
			committedStatuses(),
			end,
			start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormStore) ListAppointmentsForPeriod(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"professional_id = ? AND start_time >= ? AND start_time < ?",
			professionalID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Block
// --------------------------------------------------

func (r *ScheduleGormStore) SaveBlock(
	ctx context.Context,
	b *models.Block,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ScheduleGormStore) GetBlock(
	ctx context.Context,
	id uint,
) (*models.Block, error) {

	var b models.Block
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, asNotFound(err, "block")
	}
	return &b, nil
}

func (r *ScheduleGormStore) DeleteBlock(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Block{}, id).Error
}

func (r *ScheduleGormStore) FindBlocks(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND start_time < ? AND end_time > ?",
			professionalID,
			end,
			start,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *ScheduleGormStore) GetWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		First(&wh).Error; err != nil {
		return nil, asNotFound(err, "working_hours")
	}

	return &wh, nil
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *ScheduleGormStore) InTx(
	ctx context.Context,
	fn func(schedule.Store) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormStore{db: tx})
	})
}

// Compile-time check
var _ schedule.Store = (*ScheduleGormStore)(nil)
