package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

// BuildSchedule maps each prescription's frequency onto canonical time
// labels, merges slots shared across medications and sorts them by label.
func BuildSchedule(prescriptions []domain.Prescription) domain.TimingSchedule {
	slots := make(map[string][]string)

	for _, prescription := range prescriptions {
		label := prescription.MedicationName + " " + prescription.Dosage
		for _, t := range slotTimes(strings.ToLower(prescription.Frequency)) {
			slots[t] = append(slots[t], label)
		}
	}

	times := make([]string, 0, len(slots))
	for t := range slots {
		times = append(times, t)
	}
	sort.Strings(times)

	schedule := make([]domain.TimingSlot, 0, len(times))
	for _, t := range times {
		schedule = append(schedule, domain.TimingSlot{
			Time:         t,
			Medications:  slots[t],
			Instructions: slotInstructions(t),
		})
	}

	return domain.TimingSchedule{
		Slots:               schedule,
		GeneralInstructions: generalScheduleInstructions,
	}
}

// slotTimes resolves a frequency string via the ordered trigger table, then
// the every-N-hours lookup, then the single-slot fallback.
func slotTimes(frequency string) []string {
	for _, rule := range frequencySlotRules {
		if containsAny(frequency, rule.triggers) {
			return rule.times
		}
	}
	if strings.Contains(frequency, "every") {
		if m := everyHoursPattern.FindStringSubmatch(frequency); m != nil {
			hours, err := strconv.Atoi(m[1])
			if err == nil {
				if times, ok := everyHoursSlots[hours]; ok {
					return times
				}
			}
		}
	}
	return defaultSlots
}

func slotInstructions(timeLabel string) string {
	switch {
	case strings.Contains(timeLabel, "AM"):
		return "Take with water"
	case strings.Contains(timeLabel, "PM"):
		return "Take before bedtime"
	default:
		return ""
	}
}
