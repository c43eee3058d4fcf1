package deadtime

type Logger interface {
	Info(message string, module string)
	Warning(message string, module string)
	Error(string)
}

type nopLogger struct{}

func (nopLogger) Info(string, string)    {}
func (nopLogger) Warning(string, string) {}
func (nopLogger) Error(string)           {}

var logger Logger = nopLogger{}

// SetLogger installs the logger used to report warnings. It is meant to be
// called once at start-up, before any filtering runs.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	logger = l
}
