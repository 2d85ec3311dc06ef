package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	narratorrpc "lifeos/internal/modules/report/adapter/out/rpc"
	reportout "lifeos/internal/modules/report/port/out"
	apperrors "lifeos/internal/platform/errors"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	pluginStartTimeout = 3 * time.Second
	pluginCallTimeout  = 30 * time.Second
)

// PluginNarrator runs an external narrator binary per call over go-plugin's
// gRPC transport. The subprocess lives only for the duration of one Generate;
// a crashed or hung plugin never outlives the request.
type PluginNarrator struct {
	binary string
}

func NewPluginNarrator(binary string) reportout.Narrator {
	return &PluginNarrator{binary: binary}
}

func (n *PluginNarrator) Generate(ctx context.Context, prompt string) (string, error) {
	if n.binary == "" {
		return "", fmt.Errorf("%w: no narrator plugin configured", apperrors.ErrNarrator)
	}
	client, closeFn, err := n.connect(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrNarrator, err)
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, pluginCallTimeout)
	defer cancel()
	response, err := client.Generate(callCtx, &narratorrpc.GenerateRequest{Prompt: prompt})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: plugin timed out", apperrors.ErrNarrator)
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrNarrator, err)
	}
	if response.Narrative == "" {
		return "", fmt.Errorf("%w: empty narrative", apperrors.ErrNarrator)
	}
	return response.Narrative, nil
}

func (n *PluginNarrator) connect(ctx context.Context) (narratorrpc.NarratorClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  narratorrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          narratorrpc.PluginMap(nil),
		Cmd:              exec.Command(n.binary),
		Managed:          true,
		StartTimeout:     pluginStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start plugin client: %w", err)
	}
	raw, err := rpcClient.Dispense(narratorrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense plugin: %w", err)
	}
	typed, ok := raw.(narratorrpc.NarratorClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("plugin rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
