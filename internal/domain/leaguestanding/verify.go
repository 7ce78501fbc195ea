package leaguestanding

import (
	"errors"
	"fmt"
)

var (
	ErrRowCountMismatch   = errors.New("row count mismatch")
	ErrVerificationFailed = errors.New("verification failed")
)

// FieldMismatch is one differing column of a row.
type FieldMismatch struct {
	Field    Field
	Computed string
	Trusted  string
}

// RowReport pairs a computed row with the trusted row at the same position.
type RowReport struct {
	Index      int
	Computed   Standing
	Trusted    Standing
	Mismatches []FieldMismatch
}

func (r RowReport) OK() bool {
	return len(r.Mismatches) == 0
}

// Report is the outcome of comparing a computed table against a trusted one.
type Report struct {
	Fields      []Field
	Rows        []RowReport
	TotalErrors int
}

func (r Report) OK() bool {
	return r.TotalErrors == 0
}

// FailedRows returns the rows with at least one mismatch.
func (r Report) FailedRows() []RowReport {
	var out []RowReport
	for _, row := range r.Rows {
		if !row.OK() {
			out = append(out, row)
		}
	}
	return out
}

// Err returns a *VerificationError when the report has mismatches, nil otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return &VerificationError{Report: r}
}

// VerificationError carries the full report of a failed verification.
type VerificationError struct {
	Report Report
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s: %d mismatched fields in %d rows", ErrVerificationFailed, e.Report.TotalErrors, len(e.Report.FailedRows()))
}

func (e *VerificationError) Unwrap() error {
	return ErrVerificationFailed
}

// Verify compares computed and trusted rows by position. Position encodes the
// rank under test, so rows are never matched up by team. Fields defaults to
// DefaultFields.
func Verify(computed, trusted []Standing, fields ...Field) (Report, error) {
	if len(computed) != len(trusted) {
		return Report{}, fmt.Errorf("%w: computed=%d trusted=%d", ErrRowCountMismatch, len(computed), len(trusted))
	}
	if len(fields) == 0 {
		fields = DefaultFields
	}

	report := Report{
		Fields: fields,
		Rows:   make([]RowReport, 0, len(computed)),
	}
	for i := range computed {
		row := RowReport{
			Index:    i,
			Computed: computed[i],
			Trusted:  trusted[i],
		}
		for _, field := range fields {
			got, want := field.Value(computed[i]), field.Value(trusted[i])
			if got != want {
				row.Mismatches = append(row.Mismatches, FieldMismatch{Field: field, Computed: got, Trusted: want})
			}
		}
		report.TotalErrors += len(row.Mismatches)
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}
