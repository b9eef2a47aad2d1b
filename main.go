package main

import (
	"context"
	"os"
	"time"

	"github.com/silinternational/inspection-api/cmd"
	"github.com/silinternational/inspection-api/domain"
	"github.com/silinternational/inspection-api/listeners"
)

func main() {
	listeners.RegisterListeners()

	err := cmd.Execute(context.Background())
	listeners.Wait(time.Duration(domain.Env.ListenerWaitSeconds) * time.Second)
	domain.FlushLogs()
	if err != nil {
		os.Exit(1)
	}
}
