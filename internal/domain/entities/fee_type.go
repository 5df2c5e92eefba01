package entities

import "strings"

// FeeType is the category of tuition-process payment a claim represents.
type FeeType string

const (
	FeeTypeSelectionProcess FeeType = "selection_process"
	FeeTypeApplication      FeeType = "application_fee"
	FeeTypeScholarship      FeeType = "scholarship_fee"
	FeeTypeEnrollment       FeeType = "enrollment_fee"
	FeeTypeI20Control       FeeType = "i20_control_fee"
)

var knownFeeTypes = map[FeeType]struct{}{
	FeeTypeSelectionProcess: {},
	FeeTypeApplication:      {},
	FeeTypeScholarship:      {},
	FeeTypeEnrollment:       {},
	FeeTypeI20Control:       {},
}

// proofTypeFeeTypes maps the validator's proof-type discriminators to fee types.
var proofTypeFeeTypes = map[string]FeeType{
	"selection_process":     FeeTypeSelectionProcess,
	"selection_process_fee": FeeTypeSelectionProcess,
	"application":           FeeTypeApplication,
	"application_fee":       FeeTypeApplication,
	"scholarship":           FeeTypeScholarship,
	"scholarship_fee":       FeeTypeScholarship,
	"enrollment":            FeeTypeEnrollment,
	"enrollment_fee":        FeeTypeEnrollment,
	"i20_control":           FeeTypeI20Control,
	"i20_control_fee":       FeeTypeI20Control,
	"i-20_control_fee":      FeeTypeI20Control,
}

func (f FeeType) Valid() bool {
	_, ok := knownFeeTypes[f]
	return ok
}

// ParseFeeType normalizes raw and reports whether it names a known fee type.
func ParseFeeType(raw string) (FeeType, bool) {
	f := FeeType(strings.ToLower(strings.TrimSpace(raw)))
	return f, f.Valid()
}

// FeeTypeFromProofType resolves a proof-type discriminator. Unrecognized
// discriminators are returned unchanged as the fee type.
func FeeTypeFromProofType(proofType string) FeeType {
	key := strings.ToLower(strings.TrimSpace(proofType))
	if f, ok := proofTypeFeeTypes[key]; ok {
		return f
	}
	return FeeType(strings.TrimSpace(proofType))
}
