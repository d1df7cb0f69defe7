package output

import "github.com/tkjaer/netprobe/internal/shared"

// Output interface for different report destinations
type Output interface {
	WriteReport(report *shared.SessionReport) error
	Close() error
}

// OutputManager fans a completed session report out to all registered outputs
type OutputManager struct {
	outputs []Output
}

func (om *OutputManager) Register(o Output) {
	om.outputs = append(om.outputs, o)
}

// WriteReport writes the report to every registered output and returns the
// first error encountered, after all outputs have been attempted.
func (om *OutputManager) WriteReport(report *shared.SessionReport) error {
	var firstErr error
	for _, o := range om.outputs {
		if err := o.WriteReport(report); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (om *OutputManager) Close() {
	for _, o := range om.outputs {
		o.Close()
	}
}
