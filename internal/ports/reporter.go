package ports

// Reporter frames demo output for the console.
type Reporter interface {
	DemoStarted(argument, value string)
	DemoFailed(argument string, err error)
}
