package main

import (
	"beescraper/cmd/beescraper/commands"
	"beescraper/lib/serviceutil"
)

func main() {
	// the only long waits are network fetches and courtesy delays;
	// an interrupt should cut both short
	commands.ExecuteContext(serviceutil.SignalContext())
}
