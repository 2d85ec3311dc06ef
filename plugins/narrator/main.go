package main

import (
	"context"
	"fmt"
	"strings"

	narratorrpc "lifeos/internal/modules/report/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// Offline narrator. It writes a template review from the prompt figures so
// weekly reports keep working without an API key.
type server struct{}

func (s *server) Describe(_ context.Context, _ *narratorrpc.Empty) (*narratorrpc.Description, error) {
	return &narratorrpc.Description{
		Name:    "template",
		Version: "1.0.0",
		Style:   "plain weekly review, no network",
	}, nil
}

func (s *server) Generate(_ context.Context, in *narratorrpc.GenerateRequest) (*narratorrpc.GenerateResponse, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return nil, fmt.Errorf("empty prompt")
	}
	var b strings.Builder
	b.WriteString("Weekly review\n\n")
	b.WriteString("Here is what the ledger says about your week:\n\n")
	b.WriteString(prompt)
	b.WriteString("\n\nEvery focused minute in that tally was earned the slow way. ")
	b.WriteString("Keep the streak reasonable, spend a little of the balance on yourself, ")
	b.WriteString("and set one small target for the coming week.\n")
	return &narratorrpc.GenerateResponse{Narrative: b.String()}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: narratorrpc.HandshakeConfig,
		Plugins:         narratorrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
