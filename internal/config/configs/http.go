package configs

// HTTP defines configuration for the query HTTP server that serves the
// estimate and option-listing endpoints.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
