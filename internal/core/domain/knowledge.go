package domain

// MedicationRecord is the knowledge source's view of a single medication.
// Unknown medications resolve to a default record, never to nil.
type MedicationRecord struct {
	GenericName string   `json:"generic_name" yaml:"generic_name"`
	Class       string   `json:"class" yaml:"class"`
	SideEffects []string `json:"common_side_effects" yaml:"common_side_effects"`
	Interacts   []string `json:"interactions" yaml:"interactions"`
	Precautions []string `json:"precautions" yaml:"precautions"`
}

// Interaction describes a known interacting medication pair.
type Interaction struct {
	Medications []string `json:"medications" yaml:"medications"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Description string   `json:"description" yaml:"description"`
	Action      string   `json:"action" yaml:"action"`
}

// SpecialtyAdvice is one specialist referral suggested by the knowledge source.
type SpecialtyAdvice struct {
	Specialty string  `json:"specialty" yaml:"specialty"`
	Reason    string  `json:"reason" yaml:"reason"`
	Priority  Urgency `json:"priority" yaml:"priority"`
}
