package models

// NumberingCounter represents one per-key sequence counter row.
// NextValue is the value handed out on the following allocation; PeriodValue
// snapshots the last calendar period seen so rollover can be detected.
type NumberingCounter struct {
	CounterKey  string `db:"counter_key"`
	NextValue   int64  `db:"next_value"`
	Period      string `db:"period"`       // NONE | YEARLY | MONTHLY
	PeriodValue string `db:"period_value"` // e.g. "2025" or "202507", empty for NONE
	AuditFields
}
