package host

// Recorder is an in-memory Host for tests.
//
// Argv scripts the argument source; messages to each sink and the first exit
// code are captured for assertions. Exit records the code and returns, so
// terminating entry points return to the caller instead of ending the test
// process.
type Recorder struct {
	// Argv is returned from Args.
	Argv []string

	// Out collects success-sink messages in order.
	Out []string

	// Err collects error-sink messages in order.
	Err []string

	// Code holds the first exit code passed to Exit, or nil if Exit was
	// never called.
	Code *int
}

// Args returns the scripted argument vector.
func (r *Recorder) Args() []string {
	return r.Argv
}

// Print records msg on the success sink.
func (r *Recorder) Print(msg string) error {
	r.Out = append(r.Out, msg)
	return nil
}

// PrintError records msg on the error sink.
func (r *Recorder) PrintError(msg string) error {
	r.Err = append(r.Err, msg)
	return nil
}

// Exit records the first exit code and returns.
func (r *Recorder) Exit(code int) {
	if r.Code == nil {
		c := code
		r.Code = &c
	}
}

// Exited reports whether Exit was called.
func (r *Recorder) Exited() bool {
	return r.Code != nil
}
