package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/internal/domain/entity"
	"github.com/josephprado/schedjoeler-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newAppointmentUsecaseForTest(t *testing.T) (AppointmentUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewAppointmentUsecase(db, newTestLogger(), nil, repository.NewAppointmentRepository(), repository.NewUserRepository())
	return uc, db
}

func statusPtr(s entity.AppointmentStatus) *string {
	raw := string(s)
	return &raw
}

func TestCreateAppointmentDefaultsToNew(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)
	ctx := context.Background()

	provider := seedUser(t, db, "Pat", "Provider")
	client := seedUser(t, db, "Cal", "Client")

	created, err := uc.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		DateTime: time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC),
		Provider: provider.UUID,
		Client:   client.UUID,
		Location: "Room 4",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	if created.UUID == uuid.Nil {
		t.Fatal("expected a uuid to be assigned")
	}
	if created.Status != string(entity.StatusNew) {
		t.Errorf("Status = %s, want NEW", created.Status)
	}
	if created.Provider.UUID != provider.UUID || created.Client.UUID != client.UUID {
		t.Errorf("unexpected participants: %s / %s", created.Provider.UUID, created.Client.UUID)
	}
}

func TestCreateAppointmentUnknownProvider(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)

	client := seedUser(t, db, "Cal", "Client")
	unknown := uuid.New()

	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DateTime: time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC),
		Provider: unknown,
		Client:   client.UUID,
	})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.UUID != unknown {
		t.Errorf("NotFoundError.UUID = %s, want %s", notFound.UUID, unknown)
	}
}

func TestCreateAppointmentSameUserBothRoles(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)

	user := seedUser(t, db, "Solo", "Practitioner")

	created, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DateTime: time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC),
		Provider: user.UUID,
		Client:   user.UUID,
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if created.Provider.UUID != user.UUID || created.Client.UUID != user.UUID {
		t.Errorf("unexpected participants: %+v", created)
	}
}

func TestGetAppointmentNotFound(t *testing.T) {
	uc, _ := newAppointmentUsecaseForTest(t)

	_, err := uc.GetAppointment(context.Background(), uuid.New())

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Resource != "Appointment" {
		t.Errorf("Resource = %s, want Appointment", notFound.Resource)
	}
}

func TestListAppointmentsNoCriteriaReturnsAllSorted(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)

	provider := seedUser(t, db, "Pat", "Provider")
	client := seedUser(t, db, "Cal", "Client")

	later := seedAppointment(t, db, provider, client, time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC), entity.StatusNew)
	earlier := seedAppointment(t, db, provider, client, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), entity.StatusNew)

	appointments, err := uc.ListAppointments(context.Background(), &dto.ListAppointmentsQuery{})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}

	if len(appointments) != 2 {
		t.Fatalf("len = %d, want 2", len(appointments))
	}
	if appointments[0].UUID != earlier.UUID || appointments[1].UUID != later.UUID {
		t.Errorf("expected ascending date order, got %s then %s", appointments[0].UUID, appointments[1].UUID)
	}
}

func TestListAppointmentsParticipantMatchesEitherRole(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)

	alice := seedUser(t, db, "Alice", "A")
	bob := seedUser(t, db, "Bob", "B")
	carol := seedUser(t, db, "Carol", "C")

	asProvider := seedAppointment(t, db, alice, bob, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), entity.StatusNew)
	asClient := seedAppointment(t, db, bob, alice, time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC), entity.StatusNew)
	seedAppointment(t, db, bob, carol, time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC), entity.StatusNew)

	appointments, err := uc.ListAppointments(context.Background(), &dto.ListAppointmentsQuery{User: &alice.UUID})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}

	if len(appointments) != 2 {
		t.Fatalf("len = %d, want 2", len(appointments))
	}
	if appointments[0].UUID != asProvider.UUID || appointments[1].UUID != asClient.UUID {
		t.Errorf("unexpected appointments: %+v", appointments)
	}
}

func TestListAppointmentsRangeBoundariesAreInclusive(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)

	provider := seedUser(t, db, "Pat", "Provider")
	client := seedUser(t, db, "Cal", "Client")

	from := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)

	seedAppointment(t, db, provider, client, from.Add(-time.Second), entity.StatusNew)
	atFrom := seedAppointment(t, db, provider, client, from, entity.StatusNew)
	atTo := seedAppointment(t, db, provider, client, to, entity.StatusNew)
	seedAppointment(t, db, provider, client, to.Add(time.Second), entity.StatusNew)

	appointments, err := uc.ListAppointments(context.Background(), &dto.ListAppointmentsQuery{From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}

	if len(appointments) != 2 {
		t.Fatalf("len = %d, want 2", len(appointments))
	}
	if appointments[0].UUID != atFrom.UUID || appointments[1].UUID != atTo.UUID {
		t.Errorf("unexpected appointments: %+v", appointments)
	}
}

func TestListAppointmentsCombinesCriteria(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)

	alice := seedUser(t, db, "Alice", "A")
	bob := seedUser(t, db, "Bob", "B")

	// Matches participant and status but not range.
	seedAppointment(t, db, alice, bob, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), entity.StatusComplete)
	// Matches participant and range but not status.
	seedAppointment(t, db, alice, bob, time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC), entity.StatusNew)
	// Matches everything.
	match := seedAppointment(t, db, bob, alice, time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), entity.StatusComplete)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	appointments, err := uc.ListAppointments(context.Background(), &dto.ListAppointmentsQuery{
		User:   &alice.UUID,
		From:   &from,
		Status: statusPtr(entity.StatusComplete),
	})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}

	if len(appointments) != 1 {
		t.Fatalf("len = %d, want 1", len(appointments))
	}
	if appointments[0].UUID != match.UUID {
		t.Errorf("UUID = %s, want %s", appointments[0].UUID, match.UUID)
	}
}

func TestListAppointmentsUnknownUser(t *testing.T) {
	uc, _ := newAppointmentUsecaseForTest(t)

	unknown := uuid.New()
	_, err := uc.ListAppointments(context.Background(), &dto.ListAppointmentsQuery{User: &unknown})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListAppointmentsInvalidStatus(t *testing.T) {
	uc, _ := newAppointmentUsecaseForTest(t)

	bad := "PENDING"
	_, err := uc.ListAppointments(context.Background(), &dto.ListAppointmentsQuery{Status: &bad})

	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListAppointmentsNoMatchesIsEmptyNonNil(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)

	provider := seedUser(t, db, "Pat", "Provider")
	client := seedUser(t, db, "Cal", "Client")
	seedAppointment(t, db, provider, client, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), entity.StatusNew)

	appointments, err := uc.ListAppointments(context.Background(), &dto.ListAppointmentsQuery{
		Status: statusPtr(entity.StatusComplete),
	})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if appointments == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(appointments) != 0 {
		t.Errorf("len = %d, want 0", len(appointments))
	}
}

func TestUpdateAppointmentReschedule(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)
	ctx := context.Background()

	provider := seedUser(t, db, "Pat", "Provider")
	client := seedUser(t, db, "Cal", "Client")
	appointment := seedAppointment(t, db, provider, client, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC), entity.StatusNew)

	newTime := time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC)
	updated, err := uc.UpdateAppointment(ctx, appointment.UUID, &dto.UpdateAppointmentRequest{
		DateTime: &newTime,
		Status:   statusPtr(entity.StatusRescheduled),
	})
	if err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}

	if !updated.DateTime.Equal(newTime) {
		t.Errorf("DateTime = %s, want %s", updated.DateTime, newTime)
	}
	if updated.Status != string(entity.StatusRescheduled) {
		t.Errorf("Status = %s, want RESCHEDULED", updated.Status)
	}
	if updated.Provider.UUID != provider.UUID || updated.Client.UUID != client.UUID {
		t.Errorf("participants changed: %+v", updated)
	}
}

func TestUpdateAppointmentReassignsProvider(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)
	ctx := context.Background()

	provider := seedUser(t, db, "Pat", "Provider")
	client := seedUser(t, db, "Cal", "Client")
	substitute := seedUser(t, db, "Sam", "Substitute")
	appointment := seedAppointment(t, db, provider, client, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC), entity.StatusNew)

	updated, err := uc.UpdateAppointment(ctx, appointment.UUID, &dto.UpdateAppointmentRequest{
		Provider: &substitute.UUID,
	})
	if err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}

	if updated.Provider.UUID != substitute.UUID {
		t.Errorf("Provider = %s, want %s", updated.Provider.UUID, substitute.UUID)
	}
	if updated.Client.UUID != client.UUID {
		t.Errorf("Client changed: %s", updated.Client.UUID)
	}

	got, err := uc.GetAppointment(ctx, appointment.UUID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if got.Provider.UUID != substitute.UUID {
		t.Errorf("persisted Provider = %s, want %s", got.Provider.UUID, substitute.UUID)
	}
}

func TestUpdateAppointmentUnknownProvider(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)

	provider := seedUser(t, db, "Pat", "Provider")
	client := seedUser(t, db, "Cal", "Client")
	appointment := seedAppointment(t, db, provider, client, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC), entity.StatusNew)

	unknown := uuid.New()
	_, err := uc.UpdateAppointment(context.Background(), appointment.UUID, &dto.UpdateAppointmentRequest{
		Provider: &unknown,
	})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Resource != "User" {
		t.Errorf("Resource = %s, want User", notFound.Resource)
	}
}

func TestDeleteAppointmentRemovesRecord(t *testing.T) {
	uc, db := newAppointmentUsecaseForTest(t)
	ctx := context.Background()

	provider := seedUser(t, db, "Pat", "Provider")
	client := seedUser(t, db, "Cal", "Client")
	appointment := seedAppointment(t, db, provider, client, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC), entity.StatusNew)

	if err := uc.DeleteAppointment(ctx, appointment.UUID); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}

	var notFound *NotFoundError
	if _, err := uc.GetAppointment(ctx, appointment.UUID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
	if err := uc.DeleteAppointment(ctx, appointment.UUID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}
