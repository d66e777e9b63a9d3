package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

type fakeAppointmentRepo struct {
	bySlot      []entity.Appointment
	rebookRows  int64
	createErr   error
	createCalls int
	rebookCalls int
	created     *entity.Appointment
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	appointment.ID = uuid.New()
	f.created = appointment
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindBySlot(db *gorm.DB, clinicID uuid.UUID, date time.Time, timeOfDay string) ([]entity.Appointment, error) {
	return f.bySlot, nil
}

func (f *fakeAppointmentRepo) FindBookedTimes(db *gorm.DB, clinicID uuid.UUID, date time.Time) ([]string, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) Rebook(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	f.rebookCalls++
	return f.rebookRows, nil
}

func (f *fakeAppointmentRepo) CancelOwnPending(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, adminNotes string) (int64, error) {
	return 0, nil
}

func (f *fakeAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeAppointmentRepo) FindWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindApprovedInWindow(db *gorm.DB, date time.Time, fromTime, toTime string) ([]entity.Appointment, error) {
	return nil, nil
}

type fakeClinicRepo struct {
	clinic *entity.Clinic
}

func (f *fakeClinicRepo) Create(db *gorm.DB, clinic *entity.Clinic) error { return nil }

func (f *fakeClinicRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	return f.clinic, nil
}

func (f *fakeClinicRepo) FindByCenterID(db *gorm.DB, centerID uuid.UUID) ([]entity.Clinic, error) {
	return nil, nil
}

func (f *fakeClinicRepo) Update(db *gorm.DB, clinic *entity.Clinic) error { return nil }

func (f *fakeClinicRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) { return 0, nil }

type fakeFixedSlotRepo struct {
	slots []entity.FixedTimeSlot
}

func (f *fakeFixedSlotRepo) FindByClinicID(db *gorm.DB, clinicID uuid.UUID) ([]entity.FixedTimeSlot, error) {
	return f.slots, nil
}

func (f *fakeFixedSlotRepo) FindActiveByClinicAndDay(db *gorm.DB, clinicID uuid.UUID, dayOfWeek int) ([]entity.FixedTimeSlot, error) {
	return f.slots, nil
}

func (f *fakeFixedSlotRepo) ReplaceForClinicDay(db *gorm.DB, clinicID uuid.UUID, dayOfWeek int, times []string) error {
	return nil
}

func (f *fakeFixedSlotRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) { return 0, nil }

type fakeAdminRoleRepo struct{}

func (f *fakeAdminRoleRepo) Create(db *gorm.DB, adminRole *entity.AdminRole) error { return nil }

func (f *fakeAdminRoleRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.AdminRole, error) {
	return nil, nil
}

func (f *fakeAdminRoleRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) { return 0, nil }

type fakeAuditService struct {
	actions []string
}

func (f *fakeAuditService) LogAction(tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	f.actions = append(f.actions, action)
	return nil
}

// bookingTestDB wraps sqlmock in a gorm connection so transaction
// boundaries are observable while repositories stay faked.
func bookingTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               glogger.Default.LogMode(glogger.Silent),
		DisableAutomaticPing: true,
		TranslateError:       true,
	})
	require.NoError(t, err)
	return db, mock
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sundayClinic(name string) *entity.Clinic {
	active := true
	return &entity.Clinic{
		ID:                uuid.New(),
		MedicalCenterID:   uuid.New(),
		Name:              name,
		UseFixedTimeSlots: true,
		IsActive:          &active,
	}
}

func offeredSlot(clinicID uuid.UUID, timeSlot string) entity.FixedTimeSlot {
	active := true
	return entity.FixedTimeSlot{
		ID:       uuid.New(),
		ClinicID: clinicID,
		// 2025-03-02 is a Sunday
		DayOfWeek: 0,
		TimeSlot:  timeSlot,
		IsActive:  &active,
	}
}

func bookingRequest(clinicID uuid.UUID) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		ClinicID:        clinicID,
		AppointmentDate: "2025-03-02",
		AppointmentTime: "08:07",
		PatientName:     "سارة أحمد",
		PatientGender:   entity.GenderFemale,
		PatientAge:      29,
	}
}

func newBookingUsecase(t *testing.T, apptRepo *fakeAppointmentRepo, clinic *entity.Clinic, slots []entity.FixedTimeSlot) (AppointmentUsecase, sqlmock.Sqlmock, *fakeAuditService) {
	t.Helper()

	db, mock := bookingTestDB(t)
	audit := &fakeAuditService{}
	uc := NewAppointmentUsecase(db, quietLogger(), apptRepo,
		&fakeClinicRepo{clinic: clinic}, &fakeFixedSlotRepo{slots: slots},
		&fakeAdminRoleRepo{}, nil, audit)
	return uc, mock, audit
}

func TestCreateAppointmentFreshSlot(t *testing.T) {
	clinic := sundayClinic("عيادة عامة")
	apptRepo := &fakeAppointmentRepo{}
	uc, mock, audit := newBookingUsecase(t, apptRepo, clinic, []entity.FixedTimeSlot{offeredSlot(clinic.ID, "08:07")})

	mock.ExpectBegin()
	mock.ExpectCommit()

	userID := uuid.New()
	resp, err := uc.CreateAppointment(context.Background(), userID, bookingRequest(clinic.ID))
	require.NoError(t, err)

	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, 1, apptRepo.createCalls)
	assert.Equal(t, 0, apptRepo.rebookCalls)
	assert.Contains(t, audit.actions, entity.AuditActionAppointmentCreate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentReusesFreedRow(t *testing.T) {
	clinic := sundayClinic("عيادة عامة")
	freed := entity.Appointment{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		MedicalCenterID: clinic.MedicalCenterID,
		ClinicID:        clinic.ID,
		AppointmentDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "08:07",
		Status:          entity.AppointmentStatusCancelled,
		AdminNotes:      "stale note",
	}
	apptRepo := &fakeAppointmentRepo{bySlot: []entity.Appointment{freed}, rebookRows: 1}
	uc, mock, _ := newBookingUsecase(t, apptRepo, clinic, []entity.FixedTimeSlot{offeredSlot(clinic.ID, "08:07")})

	mock.ExpectBegin()
	mock.ExpectCommit()

	userID := uuid.New()
	resp, err := uc.CreateAppointment(context.Background(), userID, bookingRequest(clinic.ID))
	require.NoError(t, err)

	// The freed row is overwritten in place, never duplicated.
	assert.Equal(t, freed.ID, resp.ID)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	assert.Empty(t, resp.AdminNotes)
	assert.Equal(t, 0, apptRepo.createCalls)
	assert.Equal(t, 1, apptRepo.rebookCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentRebookClaimLost(t *testing.T) {
	clinic := sundayClinic("عيادة عامة")
	freed := entity.Appointment{
		ID:              uuid.New(),
		ClinicID:        clinic.ID,
		AppointmentDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "08:07",
		Status:          entity.AppointmentStatusCancelled,
	}
	// Zero affected rows from Rebook means a concurrent booking already
	// moved the row back to pending; exactly one of the two may win.
	apptRepo := &fakeAppointmentRepo{bySlot: []entity.Appointment{freed}, rebookRows: 0}
	uc, mock, audit := newBookingUsecase(t, apptRepo, clinic, []entity.FixedTimeSlot{offeredSlot(clinic.ID, "08:07")})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.CreateAppointment(context.Background(), uuid.New(), bookingRequest(clinic.ID))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, apptRepo.rebookCalls)
	assert.Equal(t, 0, apptRepo.createCalls)
	assert.Empty(t, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentActiveRowConflicts(t *testing.T) {
	clinic := sundayClinic("عيادة عامة")
	booked := entity.Appointment{
		ID:              uuid.New(),
		ClinicID:        clinic.ID,
		AppointmentDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "08:07",
		Status:          entity.AppointmentStatusPending,
	}
	apptRepo := &fakeAppointmentRepo{bySlot: []entity.Appointment{booked}}
	uc, mock, _ := newBookingUsecase(t, apptRepo, clinic, []entity.FixedTimeSlot{offeredSlot(clinic.ID, "08:07")})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.CreateAppointment(context.Background(), uuid.New(), bookingRequest(clinic.ID))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 0, apptRepo.createCalls)
	assert.Equal(t, 0, apptRepo.rebookCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentDuplicateKeyTranslated(t *testing.T) {
	clinic := sundayClinic("عيادة عامة")
	// A concurrent insert can slip between FindBySlot and Create; the
	// unique index reports it as a duplicated key.
	apptRepo := &fakeAppointmentRepo{createErr: gorm.ErrDuplicatedKey}
	uc, mock, audit := newBookingUsecase(t, apptRepo, clinic, []entity.FixedTimeSlot{offeredSlot(clinic.ID, "08:07")})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.CreateAppointment(context.Background(), uuid.New(), bookingRequest(clinic.ID))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentEligibilityBeforeWrite(t *testing.T) {
	clinic := sundayClinic("عيادة باطنية")
	apptRepo := &fakeAppointmentRepo{}
	uc, mock, audit := newBookingUsecase(t, apptRepo, clinic, []entity.FixedTimeSlot{offeredSlot(clinic.ID, "08:07")})

	req := bookingRequest(clinic.ID)
	req.PatientAge = 10
	_, err := uc.CreateAppointment(context.Background(), uuid.New(), req)
	require.Error(t, err)

	// Rejection happens before any transaction or write.
	assert.Equal(t, 0, apptRepo.createCalls)
	assert.Equal(t, 0, apptRepo.rebookCalls)
	assert.Empty(t, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentSlotNotOffered(t *testing.T) {
	clinic := sundayClinic("عيادة عامة")
	apptRepo := &fakeAppointmentRepo{}
	uc, mock, _ := newBookingUsecase(t, apptRepo, clinic, []entity.FixedTimeSlot{offeredSlot(clinic.ID, "09:00")})

	_, err := uc.CreateAppointment(context.Background(), uuid.New(), bookingRequest(clinic.ID))
	assert.ErrorIs(t, err, ErrSlotNotOffered)
	assert.Equal(t, 0, apptRepo.createCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
