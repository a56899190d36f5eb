package i

// Logger is the leveled logger handed to services.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
	Debug(string)
}
