package engine

import (
	"regexp"
	"strings"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

// All tables below are process-wide read-only configuration. Precedence is
// carried by slice order, never by control flow.

// Medication names matched case-insensitively anywhere in a line.
var commonMedications = []string{
	"amoxicillin", "metformin", "lisinopril", "atorvastatin",
	"aspirin", "ibuprofen", "acetaminophen", "omeprazole",
	"levothyroxine", "amlodipine", "losartan", "gabapentin",
	"warfarin",
}

var summaryHeadings = []string{
	"summary", "diagnosis", "chief complaint", "impression", "assessment",
}

var medicationHeadings = []string{
	"medication", "prescription", "drug", "rx:", "treatment plan",
}

var (
	dosagePattern = regexp.MustCompile(`(?i)(\d+\s*(?:mg|mcg|g|ml|units?|tablets?|capsules?))`)

	frequencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+\s*(?:times?|x)\s*(?:daily|per day|a day))`),
		regexp.MustCompile(`(?i)(once|twice|three times)\s*(?:daily|per day|a day)`),
		regexp.MustCompile(`(?i)(every\s+\d+\s+hours)`),
	}

	// Days checked before weeks.
	durationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+\s*days?`),
		regexp.MustCompile(`(?i)\d+\s*weeks?`),
	}

	prescriptionDuration = regexp.MustCompile(`(?i)for\s+(\d+\s+(?:days?|weeks?|months?))`)

	followUpPattern = regexp.MustCompile(`(?i)follow[- ]up|return|revisit|see (?:doctor|physician)|schedule (?:appointment|visit)`)

	everyHoursPattern = regexp.MustCompile(`(\d+)\s*hours?`)
)

// Timing phrase inference, first matching trigger wins.
type timingRule struct {
	triggers []string
	phrase   string
}

var timingRules = []timingRule{
	{triggers: []string{"with food", "with meal"}, phrase: "with meals"},
	{triggers: []string{"before bed", "bedtime"}, phrase: "before bed"},
	{triggers: []string{"morning"}, phrase: "in the morning"},
}

// Frequency string to canonical time labels, first matching trigger set wins.
// The "every N hours" lookup applies only when no counted trigger hits.
type frequencySlotRule struct {
	triggers []string
	times    []string
}

var frequencySlotRules = []frequencySlotRule{
	{triggers: []string{"once", "1"}, times: []string{"08:00 AM"}},
	{triggers: []string{"twice", "2"}, times: []string{"08:00 AM", "08:00 PM"}},
	{triggers: []string{"three times", "thrice", "3"}, times: []string{"08:00 AM", "02:00 PM", "08:00 PM"}},
	{triggers: []string{"four times", "4"}, times: []string{"08:00 AM", "12:00 PM", "04:00 PM", "08:00 PM"}},
}

var everyHoursSlots = map[int][]string{
	6:  {"06:00 AM", "12:00 PM", "06:00 PM", "12:00 AM"},
	8:  {"08:00 AM", "04:00 PM", "12:00 AM"},
	12: {"08:00 AM", "08:00 PM"},
}

var defaultSlots = []string{"08:00 AM"}

const generalScheduleInstructions = "Follow prescribed schedule consistently. Take with food unless otherwise directed."

// Specialty referral rules, scanned in table order.
type specialtyRule struct {
	specialty string
	reason    string
	triggers  []string
}

var specialtyRules = []specialtyRule{
	{"Cardiology", "Cardiovascular symptoms or treatment noted", []string{"heart", "cardiac", "chest pain", "blood pressure", "hypertension", "palpitation", "cholesterol"}},
	{"Neurology", "Neurological symptoms noted", []string{"migraine", "seizure", "numbness", "dizziness", "stroke", "neuropathy"}},
	{"Orthopedics", "Musculoskeletal complaints noted", []string{"fracture", "joint pain", "back pain", "arthritis", "sprain"}},
	{"Gastroenterology", "Digestive symptoms noted", []string{"stomach", "abdominal", "nausea", "ulcer", "reflux", "digestive"}},
	{"Pulmonology", "Respiratory symptoms noted", []string{"asthma", "wheezing", "lungs", "copd", "pneumonia", "respiratory"}},
	{"Endocrinology", "Endocrine or metabolic findings noted", []string{"diabetes", "thyroid", "blood sugar", "insulin", "hormone"}},
	{"Dermatology", "Skin findings noted", []string{"rash", "eczema", "dermatitis", "acne", "lesion"}},
	{"General Medicine", "General medical review recommended", []string{"checkup", "check-up", "physical exam", "annual exam"}},
}

// Urgency keyword groups in check order; first hit wins, default medium.
type urgencyRule struct {
	urgency  domain.Urgency
	keywords []string
}

var urgencyRules = []urgencyRule{
	{domain.UrgencyCritical, []string{"critical", "life-threatening", "call 911"}},
	{domain.UrgencyHigh, []string{"severe", "urgent", "emergency", "immediately"}},
	{domain.UrgencyMedium, []string{"moderate", "persistent", "worsening"}},
	{domain.UrgencyLow, []string{"mild", "stable", "routine"}},
}

// Facility suggestion trigger groups; all may fire on one document.
type facilityRule struct {
	triggers     []string
	facilityType string
	purpose      string
	urgency      domain.FacilityUrgency
}

var facilityRules = []facilityRule{
	{[]string{"test", "lab", "blood work", "screening"}, "Laboratory", "Diagnostic tests and blood work", domain.FacilityRoutine},
	{[]string{"x-ray", "mri", "ct scan", "imaging"}, "Imaging Center", "Medical imaging and diagnostics", domain.FacilitySoon},
	{[]string{"emergency", "urgent", "immediate"}, "Emergency Department", "Urgent medical attention", domain.FacilityUrgent},
}

// Red-flag tables for the four-pass alert scan.
var criticalConditions = []string{
	"chest pain", "difficulty breathing", "shortness of breath",
	"loss of consciousness", "severe bleeding", "stroke", "heart attack",
	"seizure", "anaphylaxis", "severe allergic reaction",
}

var warningKeywords = []string{
	"allergy", "allergic", "contraindication", "avoid", "do not",
	"caution", "warning", "side effect", "overdose", "discontinue",
}

// Subset of warningKeywords escalated from warning to danger.
var dangerKeywords = map[string]bool{
	"allergy":          true,
	"contraindication": true,
	"avoid":            true,
	"do not":           true,
}

var interactionPhrases = []string{
	"drug interaction", "interacts with", "interaction with", "do not combine",
}

var expirationTerms = []string{
	"expired", "expiration", "expiry", "use by",
}

const (
	maxMedications    = 20
	maxAlerts         = 15
	maxRecommendation = 10
	maxSummaryLen     = 500
	maxFragments      = 5
	joinedFragments   = 3
	maxMedicationName = 100
)

const defaultSummary = "No clinical summary could be extracted from this document."

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
