package domain

// AddReport summarizes the outcome of one batch of candidate domains added to
// a project. Invalid inputs are counted, never fatal; Duplicates counts inputs
// that were already members of the project's set (including repeats within the
// same batch).
type AddReport struct {
	// Added is the number of domains newly inserted into the set.
	Added uint `json:"added"`
	// Duplicates is the number of valid domains that were already present.
	Duplicates uint `json:"duplicates"`
	// Invalid is the number of inputs rejected by validation.
	Invalid uint `json:"invalid"`
}

// Processed returns the number of inputs that passed validation and were sent
// to the store.
func (r AddReport) Processed() uint {
	return r.Added + r.Duplicates
}

// DuplicatePercentage returns the share of processed domains that were already
// present, in percent. It returns 0 when nothing was processed.
func (r AddReport) DuplicatePercentage() float64 {
	processed := r.Processed()
	if processed == 0 {
		return 0
	}

	return float64(r.Duplicates) / float64(processed) * 100
}
