package iocli

//go:generate moq -out io_mock.go . IO

// IO abstracts terminal interaction so commands can be tested.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
