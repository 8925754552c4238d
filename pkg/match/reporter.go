package match

// Reporter receives run progress. It never influences results.
type Reporter interface {
	// Phase announces the start of a run phase
	Phase(name string)

	// Start is called once before the first candidate is resolved
	Start(total int)

	// Update is called after each candidate with the number resolved so far
	Update(current, total int)

	// Finish is called once resolution stops, successfully or not
	Finish()
}

var _ Reporter = NopReporter{}

// NopReporter discards all progress. It stands in when no reporter is given.
type NopReporter struct{}

// Phase does nothing
func (NopReporter) Phase(string) {}

// Start does nothing
func (NopReporter) Start(int) {}

// Update does nothing
func (NopReporter) Update(int, int) {}

// Finish does nothing
func (NopReporter) Finish() {}
