package core

// WaitTime bounds graceful shutdown and outbound publish calls, in seconds.
const WaitTime = 10

type ServerParams struct {
	Port int
}
