package domain

import "time"

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

type FacilityUrgency string

const (
	FacilityRoutine FacilityUrgency = "routine"
	FacilitySoon    FacilityUrgency = "soon"
	FacilityUrgent  FacilityUrgency = "urgent"
)

type AlertLevel string

const (
	AlertInfo     AlertLevel = "info"
	AlertWarning  AlertLevel = "warning"
	AlertDanger   AlertLevel = "danger"
	AlertCritical AlertLevel = "critical"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Medication is an entry extracted by the line scanner. Name, Dosage and
// Frequency are never empty: unmatched fields fall back to the
// "As prescribed" / "As directed" defaults.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Timing    string `json:"timing,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Prescription is the knowledge-source cross-referenced view of a named
// medication. Duration stays empty when no clause matched.
type Prescription struct {
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// TimingSlot groups medication labels sharing one canonical time label.
type TimingSlot struct {
	Time         string   `json:"time"`
	Medications  []string `json:"medications"`
	Instructions string   `json:"instructions,omitempty"`
}

type TimingSchedule struct {
	Slots               []TimingSlot `json:"schedule"`
	GeneralInstructions string       `json:"general_instructions"`
}

type Recommendation struct {
	Specialty string  `json:"specialty"`
	Reason    string  `json:"reason"`
	Urgency   Urgency `json:"urgency"`
	Notes     string  `json:"notes,omitempty"`
}

type FacilitySuggestion struct {
	FacilityType string          `json:"facility_type"`
	Purpose      string          `json:"purpose"`
	Urgency      FacilityUrgency `json:"urgency"`
}

type Alert struct {
	Level    AlertLevel `json:"level"`
	Message  string     `json:"message"`
	Category string     `json:"category,omitempty"`
}

type RedFlag struct {
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Severity       Severity `json:"severity"`
	Recommendation string   `json:"recommendation"`
}

type AdditionalInsights struct {
	RedFlags      []RedFlag `json:"red_flags"`
	GeneralAdvice string    `json:"general_advice,omitempty"`
}

type ProgressState struct {
	Stage     string    `json:"stage"`
	Progress  int       `json:"progress"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ProcessingMetadata struct {
	DurationMS     float64         `json:"duration_ms"`
	SourceType     SourceType      `json:"source_type"`
	FileSizeBytes  int64           `json:"file_size_bytes,omitempty"`
	PageCount      int             `json:"page_count,omitempty"`
	WordCount      int             `json:"word_count"`
	ProcessedAt    time.Time       `json:"processed_at"`
	ProgressStates []ProgressState `json:"progress_states"`
}

// AnalysisResult aggregates every sub-extractor output for one request.
type AnalysisResult struct {
	Success         bool                 `json:"success"`
	Summary         string               `json:"summary"`
	Medications     []Medication         `json:"medications"`
	Prescriptions   []Prescription       `json:"prescriptions,omitempty"`
	Schedule        TimingSchedule       `json:"medication_timing"`
	Recommendations []Recommendation     `json:"hospital_recommendations"`
	Facilities      []FacilitySuggestion `json:"facility_suggestions"`
	Alerts          []Alert              `json:"alerts"`
	Insights        AdditionalInsights   `json:"additional_insights"`
	Metadata        ProcessingMetadata   `json:"metadata"`
	Error           string               `json:"error,omitempty"`
}
