package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/dto"
	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/schedule"
	"github.com/clinicware/clinic-scheduler/internal/timezone"
)

// Client is the JSON-over-HTTP side of the schedule view: one method per
// remote operation, bearer credential attached to every call. A non-2xx
// reply or a transport failure both mean "not applied".
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

var _ schedule.Service = (*Client)(nil)

// ======================================================
// REQUEST PLUMBING
// ======================================================

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	// The stored credential is a hard precondition: without it the action
	// fails before any request is built.
	if c.token == "" {
		return httperr.ErrBusiness("missing_credentials")
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr httperr.HTTPError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Code != "" {
			return httperr.ErrBusiness(apiErr.Code)
		}
		return fmt.Errorf("request %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ======================================================
// READS
// ======================================================

func (c *Client) FetchDay(ctx context.Context, date time.Time) ([]schedule.ProfessionalDay, error) {
	var resp struct {
		Data  []dto.ProfessionalAppointmentsDTO `json:"data"`
		Total int                               `json:"total"`
	}

	path := "/api/me/schedule?date=" + timezone.FormatDate(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	days := make([]schedule.ProfessionalDay, 0, len(resp.Data))
	for _, p := range resp.Data {
		days = append(days, schedule.ProfessionalDay{
			ProfessionalID:   p.ProfessionalID,
			ProfessionalName: p.ProfessionalName,
			Appointments:     toAppointments(p.Appointments),
		})
	}
	return days, nil
}

func toAppointments(in []dto.AppointmentDTO) []schedule.Appointment {
	out := make([]schedule.Appointment, 0, len(in))
	for _, ap := range in {
		out = append(out, schedule.Appointment{
			ID:               ap.ID,
			Start:            ap.StartTime,
			End:              ap.EndTime,
			ProfessionalID:   ap.ProfessionalID,
			ProfessionalName: ap.ProfessionalName,
			PatientID:        ap.PatientID,
			PatientName:      ap.PatientName,
			Location:         ap.Location,
			Observation:      ap.Observation,
			// the one place server statuses become domain values
			Status: domain.Normalize(ap.Status),
		})
	}
	return out
}

func (c *Client) FetchPatients(ctx context.Context) ([]schedule.Person, error) {
	var patients []dto.PersonDTO
	if err := c.do(ctx, http.MethodGet, "/api/me/patients", nil, &patients); err != nil {
		return nil, err
	}
	return toPeople(patients), nil
}

func (c *Client) FetchProfessionals(ctx context.Context) ([]schedule.Person, error) {
	var professionals []dto.PersonDTO
	if err := c.do(ctx, http.MethodGet, "/api/me/professionals", nil, &professionals); err != nil {
		return nil, err
	}
	return toPeople(professionals), nil
}

func toPeople(in []dto.PersonDTO) []schedule.Person {
	out := make([]schedule.Person, 0, len(in))
	for _, p := range in {
		out = append(out, schedule.Person{ID: p.ID, Name: p.Name})
	}
	return out
}

// ======================================================
// MUTATIONS
// ======================================================

type appointmentPayload struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	DurationMin    int    `json:"duration_min"`
	Location       string `json:"location"`
	Observation    string `json:"observation"`
	PatientID      string `json:"patient_id"`
	ProfessionalID string `json:"professional_id"`
}

func toPayload(in domain.CreateInput) appointmentPayload {
	return appointmentPayload{
		Date:           in.Date,
		Time:           in.Time,
		DurationMin:    in.DurationMin,
		Location:       in.Location,
		Observation:    in.Observation,
		PatientID:      in.PatientID,
		ProfessionalID: in.ProfessionalID,
	}
}

func (c *Client) CreateAppointment(ctx context.Context, in domain.CreateInput) error {
	return c.do(ctx, http.MethodPost, "/api/me/appointments", toPayload(in), nil)
}

func (c *Client) EditAppointment(ctx context.Context, in domain.EditInput) error {
	path := fmt.Sprintf("/api/me/appointments/%d", in.ID)
	return c.do(ctx, http.MethodPut, path, toPayload(in.CreateInput), nil)
}

func (c *Client) SetAppointmentStatus(ctx context.Context, id uint, status domain.Status) error {
	path := fmt.Sprintf("/api/me/appointments/%d/status", id)
	payload := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPut, path, payload, nil)
}

func (c *Client) DeleteAppointment(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/me/appointments/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
