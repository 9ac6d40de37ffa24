package appointment

import (
	"testing"
	"time"

	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/timezone"
)

func validCreate() CreateInput {
	return CreateInput{
		Date:           "2024-08-16",
		Time:           "10:00",
		DurationMin:    60,
		Location:       "clinic",
		Observation:    "avaliação inicial",
		PatientID:      "pat-1",
		ProfessionalID: "prof-1",
	}
}

func TestCreateInputValid(t *testing.T) {
	if err := validCreate().Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestCreateInputRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
		code   string
	}{
		{"professional", func(in *CreateInput) { in.ProfessionalID = "" }, "missing_professional"},
		{"patient", func(in *CreateInput) { in.PatientID = "" }, "missing_patient"},
		{"observation", func(in *CreateInput) { in.Observation = "" }, "missing_observation"},
		{"location", func(in *CreateInput) { in.Location = "office" }, "invalid_location"},
		{"duration", func(in *CreateInput) { in.DurationMin = 40 }, "invalid_duration"},
		{"time", func(in *CreateInput) { in.Time = "10:10" }, "invalid_time"},
		{"date", func(in *CreateInput) { in.Date = "16/08/2024" }, "invalid_date_or_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mutate(&in)

			err := in.Validate()
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("err = %v, want %s", err, tc.code)
			}
		})
	}
}

func TestStartEndRecomputesEnd(t *testing.T) {
	in := validCreate()
	in.DurationMin = 90

	start, end, err := in.StartEnd()
	if err != nil {
		t.Fatalf("StartEnd: %v", err)
	}

	if start.Hour() != 10 || start.Minute() != 0 {
		t.Fatalf("start = %v", start)
	}
	if got := end.Sub(start); got != 90*time.Minute {
		t.Fatalf("duration = %v, want 90m", got)
	}
	if !end.After(start) {
		t.Fatal("end must be strictly after start")
	}
	if start.Location() != timezone.Location() {
		t.Fatal("timestamps must be in the clinic zone")
	}
}

func TestEditInputRequiresID(t *testing.T) {
	in := EditInput{CreateInput: validCreate()}

	err := in.Validate()
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("err = %v, want appointment_not_found", err)
	}
}
