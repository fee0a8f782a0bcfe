package main

import (
	"lectioassist-backend/cmd/lectio-cli/commands"
	"lectioassist-backend/pkg/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
