package schedule

import (
	"context"
	"time"

	"github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/timezone"
)

// ======================================================
// COLLABORATORS
// ======================================================

// ProfessionalDay is one professional with that day's appointments, as
// the server returns them. Order is the server's fetch order and stays
// authoritative through the pipeline.
type ProfessionalDay struct {
	ProfessionalID   string
	ProfessionalName string
	Appointments     []Appointment
}

type Person struct {
	ID   string
	Name string
}

// Service is the remote boundary the view talks through. Implementations
// return an error for anything that was not applied; the view never
// mutates its local state on an error.
type Service interface {
	FetchDay(ctx context.Context, date time.Time) ([]ProfessionalDay, error)

	CreateAppointment(ctx context.Context, in appointment.CreateInput) error
	EditAppointment(ctx context.Context, in appointment.EditInput) error
	SetAppointmentStatus(ctx context.Context, id uint, status appointment.Status) error
	DeleteAppointment(ctx context.Context, id uint) error

	FetchPatients(ctx context.Context) ([]Person, error)
	FetchProfessionals(ctx context.Context) ([]Person, error)
}

// ======================================================
// DIALOG STATE
// ======================================================

type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogCreating
	DialogEditing
)

// Draft pre-fills the create dialog from an empty-cell click.
type Draft struct {
	Date           string
	Time           string
	ProfessionalID string
}

// Dialog is the explicit create/edit UI state. Exactly one of Draft or
// Appointment is meaningful, per Mode.
type Dialog struct {
	Mode        DialogMode
	Draft       Draft
	Appointment Appointment

	Patients      []Person
	Professionals []Person
}

// ======================================================
// VIEW
// ======================================================

// View orchestrates the day grid: date selection, the fetch-bucketize-
// place pipeline, the create/edit dialog and the mutation round-trips.
// It is single-writer and meant for one UI event loop; the grid only ever
// changes by re-fetching after a confirmed mutation.
type View struct {
	svc Service
	now func() time.Time

	date    time.Time
	days    map[string][]ProfessionalDay
	columns []Column
	dialog  Dialog
}

func NewView(svc Service) *View {
	return &View{
		svc:  svc,
		now:  timezone.Now,
		days: make(map[string][]ProfessionalDay),
	}
}

func (v *View) Date() time.Time   { return v.date }
func (v *View) Columns() []Column { return v.columns }
func (v *View) Dialog() Dialog    { return v.dialog }

// SelectDate runs the read pipeline for a day. Re-selecting the same date
// reuses the cached fetch; the cache is only dropped by Refresh after a
// confirmed mutation.
func (v *View) SelectDate(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		date = v.now()
	}
	day := timezone.DayStart(date)
	key := timezone.FormatDate(day)

	days, ok := v.days[key]
	if !ok {
		fetched, err := v.svc.FetchDay(ctx, day)
		if err != nil {
			return err
		}
		v.days[key] = fetched
		days = fetched
	}

	v.date = day
	v.rebuild(days)
	return nil
}

// Refresh drops every cached day and re-fetches the selected one. A
// mutation is not confined to the selected date (an edit can move an
// appointment across days), so no cached fetch survives it.
func (v *View) Refresh(ctx context.Context) error {
	v.days = make(map[string][]ProfessionalDay)
	return v.SelectDate(ctx, v.date)
}

func (v *View) rebuild(days []ProfessionalDay) {
	columns := make([]Column, 0, len(days))
	for _, day := range days {
		columns = append(columns, BuildColumn(day.ProfessionalID, day.ProfessionalName, day.Appointments))
	}
	v.columns = columns
}

// ======================================================
// DIALOG TRANSITIONS
// ======================================================

// CanCreateOn reports whether empty cells of the selected date offer a
// create affordance. Past days are browsable and correctable, never
// schedulable.
func (v *View) CanCreateOn(date time.Time) bool {
	return !timezone.DayStart(date).Before(timezone.DayStart(v.now()))
}

// OpenCreate opens the create dialog pre-filled with the clicked slot and
// column. Both picker lists must load; a dialog with a broken picker is
// never shown.
func (v *View) OpenCreate(ctx context.Context, slot Slot, professionalID string) error {
	if !v.CanCreateOn(v.date) {
		return httperr.ErrBusiness("past_date")
	}

	patients, professionals, err := v.loadPickers(ctx)
	if err != nil {
		return err
	}

	v.dialog = Dialog{
		Mode: DialogCreating,
		Draft: Draft{
			Date:           timezone.FormatDate(v.date),
			Time:           string(slot),
			ProfessionalID: professionalID,
		},
		Patients:      patients,
		Professionals: professionals,
	}
	return nil
}

// OpenEdit opens the edit dialog with the clicked card's full data.
func (v *View) OpenEdit(ctx context.Context, ap Appointment) error {
	patients, professionals, err := v.loadPickers(ctx)
	if err != nil {
		return err
	}

	v.dialog = Dialog{
		Mode:          DialogEditing,
		Appointment:   ap,
		Patients:      patients,
		Professionals: professionals,
	}
	return nil
}

// CloseDialog discards the in-memory draft. Nothing was sent, nothing
// needs cancelling.
func (v *View) CloseDialog() {
	v.dialog = Dialog{}
}

func (v *View) loadPickers(ctx context.Context) ([]Person, []Person, error) {
	patients, err := v.svc.FetchPatients(ctx)
	if err != nil || len(patients) == 0 {
		return nil, nil, httperr.ErrBusiness("patients_unavailable")
	}

	professionals, err := v.svc.FetchProfessionals(ctx)
	if err != nil || len(professionals) == 0 {
		return nil, nil, httperr.ErrBusiness("professionals_unavailable")
	}

	return patients, professionals, nil
}

// ======================================================
// MUTATIONS
// ======================================================

// Submit sends the open dialog's form. Validation failures never reach
// the network; transport failures leave the dialog open and the grid in
// its last-known-good state.
func (v *View) Submit(ctx context.Context, in appointment.CreateInput) error {
	switch v.dialog.Mode {
	case DialogCreating:
		if err := in.Validate(); err != nil {
			return err
		}
		if err := v.svc.CreateAppointment(ctx, in); err != nil {
			return err
		}

	case DialogEditing:
		edit := appointment.EditInput{ID: v.dialog.Appointment.ID, CreateInput: in}
		if err := edit.Validate(); err != nil {
			return err
		}
		if err := v.svc.EditAppointment(ctx, edit); err != nil {
			return err
		}

	default:
		return httperr.ErrBusiness("no_open_dialog")
	}

	v.CloseDialog()
	return v.Refresh(ctx)
}

// SetStatus marks a card closed/missed/opened. Allowed on any browsable
// date, including past days.
func (v *View) SetStatus(ctx context.Context, id uint, status appointment.Status) error {
	if id == 0 {
		return appointment.ErrNotFound()
	}
	if !appointment.Known(status) {
		return httperr.ErrBusiness("invalid_status")
	}

	if err := v.svc.SetAppointmentStatus(ctx, id, status); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// Delete removes a card entirely. Irreversible; also allowed on past days.
func (v *View) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return appointment.ErrNotFound()
	}

	if err := v.svc.DeleteAppointment(ctx, id); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
