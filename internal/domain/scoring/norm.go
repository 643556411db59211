package scoring

import "github.com/fivefactor/ipipneo/internal/domain"

// normBand selects a record for one sex over an inclusive age range.
type normBand struct {
	variant domain.Variant
	sex     domain.Sex
	minAge  int
	maxAge  int
	record  domain.NormRecord
}

func (b normBand) matches(v domain.Variant, sex domain.Sex, age int) bool {
	return b.variant == v && b.sex == sex && age >= b.minAge && age <= b.maxAge
}

// The 300-item form has no published split finer than college-age and
// adult, so its four records rescale the matching 120-item records from 4
// to 10 items per facet.
const scale300 = 10.0 / 4.0

var (
	men300College   = rescaleNorm(men120Under21, 9, "men college-age (under 21 years old)", scale300)
	men300Adult     = rescaleNorm(men120From21To40, 10, "men adults (21 years old and over)", scale300)
	women300College = rescaleNorm(women120Under21, 11, "women college-age (under 21 years old)", scale300)
	women300Adult   = rescaleNorm(women120From21To40, 12, "women adults (21 years old and over)", scale300)
)

var normBands = []normBand{
	{domain.Variant120, domain.SexMale, domain.MinAge, 20, men120Under21},
	{domain.Variant120, domain.SexMale, 21, 40, men120From21To40},
	{domain.Variant120, domain.SexMale, 41, 60, men120From41To60},
	{domain.Variant120, domain.SexMale, 61, domain.MaxAge, men120Over60},
	{domain.Variant120, domain.SexFemale, domain.MinAge, 20, women120Under21},
	{domain.Variant120, domain.SexFemale, 21, 40, women120From21To40},
	{domain.Variant120, domain.SexFemale, 41, 60, women120From41To60},
	{domain.Variant120, domain.SexFemale, 61, domain.MaxAge, women120Over60},

	{domain.Variant300, domain.SexMale, domain.MinAge, 20, men300College},
	{domain.Variant300, domain.SexMale, 21, domain.MaxAge, men300Adult},
	{domain.Variant300, domain.SexFemale, domain.MinAge, 20, women300College},
	{domain.Variant300, domain.SexFemale, 21, domain.MaxAge, women300Adult},
}

// LookupNorm returns the record for (variant, sex, age). Callers validate sex
// and age first; a miss after validation is an internal error.
func LookupNorm(v domain.Variant, sex domain.Sex, age int) (domain.NormRecord, error) {
	if err := v.Validate(); err != nil {
		return domain.NormRecord{}, err
	}
	for _, b := range normBands {
		if b.matches(v, sex, age) {
			return b.record, nil
		}
	}
	return domain.NormRecord{}, domain.NewInternalError(domain.ErrNormNotFound,
		"no norm record for sex %q, age %d, %d questions", string(sex), age, int(v))
}

// NormRecords lists every record of a variant in table order.
func NormRecords(v domain.Variant) []domain.NormRecord {
	var out []domain.NormRecord
	for _, b := range normBands {
		if b.variant == v {
			out = append(out, b.record)
		}
	}
	return out
}

func rescaleNorm(base domain.NormRecord, id int, category string, factor float64) domain.NormRecord {
	out := domain.NormRecord{ID: id, Category: category}
	for i := 1; i < domain.NormSize; i++ {
		out.Reference[i] = base.Reference[i] * factor
	}
	return out
}
