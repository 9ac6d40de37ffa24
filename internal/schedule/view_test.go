package schedule

import (
	"context"
	"testing"
	"time"

	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/timezone"
)

// fakeService plays the server: appointments live in memory and FetchDay
// always reflects the current state, like a re-fetch after a mutation.
type fakeService struct {
	patients      []Person
	professionals []Person

	appts  map[uint]*Appointment
	order  []uint
	nextID uint

	fetchCalls  int
	createCalls int
	failCreate  bool
}

func newFakeService() *fakeService {
	return &fakeService{
		patients:      []Person{{ID: "pat-1", Name: "João"}},
		professionals: []Person{{ID: "prof-1", Name: "Ana"}},
		appts:         make(map[uint]*Appointment),
	}
}

func (s *fakeService) FetchDay(_ context.Context, date time.Time) ([]ProfessionalDay, error) {
	s.fetchCalls++

	days := make([]ProfessionalDay, 0, len(s.professionals))
	for _, p := range s.professionals {
		day := ProfessionalDay{ProfessionalID: p.ID, ProfessionalName: p.Name}
		for _, id := range s.order {
			ap := s.appts[id]
			if ap.ProfessionalID == p.ID && timezone.FormatDate(ap.Start) == timezone.FormatDate(date) {
				day.Appointments = append(day.Appointments, *ap)
			}
		}
		days = append(days, day)
	}
	return days, nil
}

func (s *fakeService) CreateAppointment(_ context.Context, in domain.CreateInput) error {
	s.createCalls++
	if s.failCreate {
		return httperr.ErrBusiness("time_conflict")
	}

	start, end, err := in.StartEnd()
	if err != nil {
		return err
	}

	s.nextID++
	s.appts[s.nextID] = &Appointment{
		ID:             s.nextID,
		Start:          start,
		End:            end,
		ProfessionalID: in.ProfessionalID,
		PatientID:      in.PatientID,
		Location:       in.Location,
		Observation:    in.Observation,
		Status:         domain.InitialStatus(),
	}
	s.order = append(s.order, s.nextID)
	return nil
}

func (s *fakeService) EditAppointment(_ context.Context, in domain.EditInput) error {
	ap, ok := s.appts[in.ID]
	if !ok {
		return domain.ErrNotFound()
	}

	start, end, err := in.StartEnd()
	if err != nil {
		return err
	}

	ap.Start = start
	ap.End = end
	ap.ProfessionalID = in.ProfessionalID
	ap.PatientID = in.PatientID
	ap.Location = in.Location
	ap.Observation = in.Observation
	return nil
}

func (s *fakeService) SetAppointmentStatus(_ context.Context, id uint, status domain.Status) error {
	ap, ok := s.appts[id]
	if !ok {
		return domain.ErrNotFound()
	}
	ap.Status = status
	return nil
}

func (s *fakeService) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := s.appts[id]; !ok {
		return domain.ErrNotFound()
	}
	delete(s.appts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakeService) FetchPatients(context.Context) ([]Person, error) {
	return s.patients, nil
}

func (s *fakeService) FetchProfessionals(context.Context) ([]Person, error) {
	return s.professionals, nil
}

// ------------------------------------------------------

func testView(svc Service) *View {
	v := NewView(svc)
	v.now = func() time.Time {
		return time.Date(2024, 8, 16, 8, 0, 0, 0, timezone.Location())
	}
	return v
}

func validInput(date string) domain.CreateInput {
	return domain.CreateInput{
		Date:           date,
		Time:           "10:00",
		DurationMin:    60,
		Location:       "clinic",
		Observation:    "sessão regular",
		PatientID:      "pat-1",
		ProfessionalID: "prof-1",
	}
}

func column(t *testing.T, v *View, professionalID string) Column {
	t.Helper()
	for _, col := range v.Columns() {
		if col.ProfessionalID == professionalID {
			return col
		}
	}
	t.Fatalf("no column for professional %q", professionalID)
	return Column{}
}

func TestSelectDateCoalescesFetches(t *testing.T) {
	svc := newFakeService()
	v := testView(svc)
	ctx := context.Background()

	date, _ := timezone.ParseDate("2024-08-16")
	if err := v.SelectDate(ctx, date); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := v.SelectDate(ctx, date); err != nil {
		t.Fatalf("re-select: %v", err)
	}

	if svc.fetchCalls != 1 {
		t.Fatalf("fetchCalls = %d, want 1 (identical fetch coalesced)", svc.fetchCalls)
	}
}

func TestSelectDateDefaultsToToday(t *testing.T) {
	svc := newFakeService()
	v := testView(svc)

	if err := v.SelectDate(context.Background(), time.Time{}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := timezone.FormatDate(v.Date()); got != "2024-08-16" {
		t.Fatalf("date = %s, want today", got)
	}
}

func TestCreateRoundTrip(t *testing.T) {
	svc := newFakeService()
	v := testView(svc)
	ctx := context.Background()

	date, _ := timezone.ParseDate("2024-08-16")
	if err := v.SelectDate(ctx, date); err != nil {
		t.Fatalf("select: %v", err)
	}

	if err := v.OpenCreate(ctx, "10:00", "prof-1"); err != nil {
		t.Fatalf("open create: %v", err)
	}

	dialog := v.Dialog()
	if dialog.Mode != DialogCreating {
		t.Fatalf("dialog mode = %d, want creating", dialog.Mode)
	}
	if dialog.Draft.Date != "2024-08-16" || dialog.Draft.Time != "10:00" || dialog.Draft.ProfessionalID != "prof-1" {
		t.Fatalf("draft not prefilled from cell: %+v", dialog.Draft)
	}

	if err := v.Submit(ctx, validInput(dialog.Draft.Date)); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if v.Dialog().Mode != DialogClosed {
		t.Fatal("dialog should close on successful submit")
	}

	col := column(t, v, "prof-1")
	b := bucketBySlot(t, col.Buckets, "10:00")
	if len(b.Cards) != 1 {
		t.Fatalf("10:00 bucket has %d cards, want 1", len(b.Cards))
	}
	card := b.Cards[0]
	if card.HeightPct != 100 || card.OffsetPct != 0 {
		t.Fatalf("placement = %d%%/%d%%, want 100%%/0%%", card.HeightPct, card.OffsetPct)
	}
	if card.Status != domain.StatusOpened {
		t.Fatalf("status = %q, want opened", card.Status)
	}
}

func TestSubmitValidationNeverReachesNetwork(t *testing.T) {
	svc := newFakeService()
	v := testView(svc)
	ctx := context.Background()

	date, _ := timezone.ParseDate("2024-08-16")
	_ = v.SelectDate(ctx, date)
	_ = v.OpenCreate(ctx, "10:00", "prof-1")

	in := validInput("2024-08-16")
	in.Observation = ""

	err := v.Submit(ctx, in)
	if !httperr.IsBusiness(err, "missing_observation") {
		t.Fatalf("err = %v, want missing_observation", err)
	}
	if svc.createCalls != 0 {
		t.Fatal("invalid input must never be sent")
	}
	if v.Dialog().Mode != DialogCreating {
		t.Fatal("dialog should stay open after a validation failure")
	}
}

func TestSubmitTransportFailureKeepsGrid(t *testing.T) {
	svc := newFakeService()
	svc.failCreate = true
	v := testView(svc)
	ctx := context.Background()

	date, _ := timezone.ParseDate("2024-08-16")
	_ = v.SelectDate(ctx, date)
	_ = v.OpenCreate(ctx, "10:00", "prof-1")

	fetchesBefore := svc.fetchCalls

	err := v.Submit(ctx, validInput("2024-08-16"))
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("err = %v, want time_conflict", err)
	}

	if v.Dialog().Mode != DialogCreating {
		t.Fatal("dialog should stay open after a transport failure")
	}
	if svc.fetchCalls != fetchesBefore {
		t.Fatal("a failed mutation must not refresh the grid")
	}
}

func TestPastDateCreateGuard(t *testing.T) {
	svc := newFakeService()
	v := testView(svc)
	ctx := context.Background()

	// Seed yesterday with one appointment.
	if err := svc.CreateAppointment(ctx, validInput("2024-08-15")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	yesterday, _ := timezone.ParseDate("2024-08-15")
	if err := v.SelectDate(ctx, yesterday); err != nil {
		t.Fatalf("select: %v", err)
	}

	if v.CanCreateOn(yesterday) {
		t.Fatal("past date must offer no create affordance")
	}

	err := v.OpenCreate(ctx, "10:00", "prof-1")
	if !httperr.IsBusiness(err, "past_date") {
		t.Fatalf("err = %v, want past_date", err)
	}
	if v.Dialog().Mode != DialogClosed {
		t.Fatal("dialog must stay closed on a past date")
	}

	// History stays correctable: status and delete still work.
	if err := v.SetStatus(ctx, 1, domain.StatusMissed); err != nil {
		t.Fatalf("set status on past date: %v", err)
	}
	if err := v.Delete(ctx, 1); err != nil {
		t.Fatalf("delete on past date: %v", err)
	}
}

func TestStatusRetransitionAllowed(t *testing.T) {
	svc := newFakeService()
	v := testView(svc)
	ctx := context.Background()

	_ = svc.CreateAppointment(ctx, validInput("2024-08-16"))

	date, _ := timezone.ParseDate("2024-08-16")
	_ = v.SelectDate(ctx, date)

	// opened -> missed -> closed: no terminal lock.
	if err := v.SetStatus(ctx, 1, domain.StatusMissed); err != nil {
		t.Fatalf("missed: %v", err)
	}
	if err := v.SetStatus(ctx, 1, domain.StatusClosed); err != nil {
		t.Fatalf("closed after missed: %v", err)
	}

	col := column(t, v, "prof-1")
	b := bucketBySlot(t, col.Buckets, "10:00")
	if b.Cards[0].Status != domain.StatusClosed {
		t.Fatalf("status = %q, want closed", b.Cards[0].Status)
	}
}

func TestDeleteRemovesFromNextFetch(t *testing.T) {
	svc := newFakeService()
	v := testView(svc)
	ctx := context.Background()

	_ = svc.CreateAppointment(ctx, validInput("2024-08-16"))

	date, _ := timezone.ParseDate("2024-08-16")
	_ = v.SelectDate(ctx, date)

	stale := column(t, v, "prof-1").Buckets
	card := bucketBySlot(t, stale, "10:00").Cards[0]

	if err := v.Delete(ctx, card.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	b := bucketBySlot(t, column(t, v, "prof-1").Buckets, "10:00")
	if len(b.Cards) != 0 {
		t.Fatal("deleted appointment still on the grid after re-fetch")
	}

	// Editing the stale id is a transport-class failure, not a no-op.
	if err := v.OpenEdit(ctx, card.Appointment); err != nil {
		t.Fatalf("open edit: %v", err)
	}
	err := v.Submit(ctx, validInput("2024-08-16"))
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("err = %v, want appointment_not_found", err)
	}
}

func TestCrossDayEditInvalidatesEveryCachedDay(t *testing.T) {
	svc := newFakeService()
	v := testView(svc)
	ctx := context.Background()

	_ = svc.CreateAppointment(ctx, validInput("2024-08-16"))

	// Browse the destination day first so its (empty) fetch is cached.
	tomorrow, _ := timezone.ParseDate("2024-08-17")
	if err := v.SelectDate(ctx, tomorrow); err != nil {
		t.Fatalf("select destination: %v", err)
	}

	today, _ := timezone.ParseDate("2024-08-16")
	if err := v.SelectDate(ctx, today); err != nil {
		t.Fatalf("select origin: %v", err)
	}

	card := bucketBySlot(t, column(t, v, "prof-1").Buckets, "10:00").Cards[0]
	if err := v.OpenEdit(ctx, card.Appointment); err != nil {
		t.Fatalf("open edit: %v", err)
	}
	if err := v.Submit(ctx, validInput("2024-08-17")); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// The destination day was cached before the move; re-selecting it
	// must show the moved appointment, not the stale empty fetch.
	if err := v.SelectDate(ctx, tomorrow); err != nil {
		t.Fatalf("re-select destination: %v", err)
	}
	b := bucketBySlot(t, column(t, v, "prof-1").Buckets, "10:00")
	if len(b.Cards) != 1 {
		t.Fatalf("destination 10:00 bucket has %d cards, want 1 (moved appointment)", len(b.Cards))
	}

	if err := v.SelectDate(ctx, today); err != nil {
		t.Fatalf("re-select origin: %v", err)
	}
	if got := len(bucketBySlot(t, column(t, v, "prof-1").Buckets, "10:00").Cards); got != 0 {
		t.Fatalf("origin 10:00 bucket has %d cards after the move, want 0", got)
	}
}

func TestPickerUnavailableSuppressesDialog(t *testing.T) {
	svc := newFakeService()
	svc.patients = nil
	v := testView(svc)
	ctx := context.Background()

	date, _ := timezone.ParseDate("2024-08-16")
	_ = v.SelectDate(ctx, date)

	err := v.OpenCreate(ctx, "10:00", "prof-1")
	if !httperr.IsBusiness(err, "patients_unavailable") {
		t.Fatalf("err = %v, want patients_unavailable", err)
	}
	if v.Dialog().Mode != DialogClosed {
		t.Fatal("a dialog with a broken picker must never open")
	}
}
