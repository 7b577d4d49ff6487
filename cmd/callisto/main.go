// Callisto is an LLM gateway that puts OpenAI and Anthropic behind one
// canonical chat API.
//
// Callers send a single request shape naming the provider; Callisto
// translates it to the provider's wire format, makes one upstream call and
// returns a single canonical response or error.
//
// Usage:
//
//	# Start the HTTP gateway
//	callisto run
//
//	# Start with a configuration file
//	callisto run --config /etc/callisto/config.yaml
//
//	# Dispatch one request from a file (or stdin with -)
//	callisto chat --file request.json
//
//	# Check configuration and credential presence
//	callisto validate
//
//	# Show version information
//	callisto version
package main

func main() {
	Execute()
}
