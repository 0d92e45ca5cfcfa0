// Package validation checks user input and reports data quality problems in
// medication datasets.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/emi03-byte/MedAI/atc"
	"github.com/emi03-byte/MedAI/dataset"
	"github.com/emi03-byte/MedAI/interfaces"
)

// maxMalformedSamples caps the malformed codes listed in a quality report.
const maxMalformedSamples = 10

var (
	// anatomical group letter followed by the rest of the hierarchy
	atcCodeRegex = regexp.MustCompile(`^[A-Z][A-Z0-9]*$`)

	// Search input: letters, digits and the punctuation found in product names,
	// including Romanian diacritics in both cedilla and comma forms
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'/%ăâîșțşţĂÂÎȘȚŞŢ]+$`)

	// substring checks are cheaper than a regex for these
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"eval(", "expression(", "url(", "@import",
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"--", "/*", "*/", "exec(",
		"; ", "| ", "& ", "`", "$(", "${",
		"../", "..\\", "%2e%2e", "file://",
		"{$ne:", "{$gt:", "{$where:", "{$regex:",
	}
)

// Compile-time check to ensure DataValidator implements DataValidator interface
var _ interfaces.DataValidator = (*DataValidator)(nil)

type DataValidator struct{}

func NewDataValidator() *DataValidator {
	return &DataValidator{}
}

// ValidateATCCode checks that code looks like an ATC code: an upper case
// letter followed by up to six upper case letters or digits.
func (v *DataValidator) ValidateATCCode(code string) error {
	if code == "" {
		return fmt.Errorf("ATC code cannot be empty")
	}
	if utf8.RuneCountInString(code) > atc.MaxPrefixLen {
		return fmt.Errorf("ATC code too long: maximum %d characters", atc.MaxPrefixLen)
	}
	if !atcCodeRegex.MatchString(code) {
		return fmt.Errorf("invalid ATC code %q: expected an upper case letter followed by letters or digits", code)
	}
	return nil
}

func (v *DataValidator) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if utf8.RuneCountInString(input) < 3 {
		return fmt.Errorf("input too short: minimum 3 characters")
	}

	if utf8.RuneCountInString(input) > 50 {
		return fmt.Errorf("input too long: maximum 50 characters")
	}

	if len(strings.Fields(input)) > 6 {
		return fmt.Errorf("search query too complex: maximum 6 words allowed")
	}

	lower := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	if !inputRegex.MatchString(input) {
		return fmt.Errorf("input contains invalid characters")
	}

	if hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// ReportDataQuality counts rows with a missing code or name, malformed codes
// and repeated product names. A missing column counts as missing on every row.
func (v *DataValidator) ReportDataQuality(ds *dataset.Dataset, codeColumn, nameColumn string) *interfaces.DataQualityReport {
	report := &interfaces.DataQualityReport{TotalRows: ds.Len()}

	codeCol, hasCode := ds.Column(codeColumn)
	nameCol, hasName := ds.Column(nameColumn)
	seen := make(map[string]struct{}, ds.Len())

	for i := range ds.Records {
		code := ""
		if hasCode {
			code = strings.TrimSpace(ds.Value(i, codeCol))
		}
		switch {
		case code == "":
			report.RowsWithoutCode++
		case v.ValidateATCCode(code) != nil:
			report.MalformedCodes++
			if len(report.MalformedCodeSamples) < maxMalformedSamples {
				report.MalformedCodeSamples = append(report.MalformedCodeSamples, code)
			}
		}

		name := ""
		if hasName {
			name = strings.TrimSpace(ds.Value(i, nameCol))
		}
		if name == "" {
			report.RowsWithoutName++
			continue
		}
		key := strings.ToUpper(name)
		if _, dup := seen[key]; dup {
			report.DuplicateNames++
		} else {
			seen[key] = struct{}{}
		}
	}

	return report
}

// hasExcessiveRepetition reports a rune repeated more than 10 times in a row.
func hasExcessiveRepetition(input string) bool {
	run := 0
	var prev rune = -1
	for _, r := range input {
		if r == prev {
			run++
			if run > 10 {
				return true
			}
			continue
		}
		prev = r
		run = 1
	}
	return false
}
