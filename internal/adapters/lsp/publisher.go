// Package lsp publishes schema associations to a language server consumer
// as JSON-RPC notifications with Content-Length framing.
package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

const associationsMethod = "json/schemaAssociations"

type notification struct {
	JSONRPC string             `json:"jsonrpc"`
	Method  string             `json:"method"`
	Params  notificationParams `json:"params"`
}

type notificationParams struct {
	Workspace    string                    `json:"workspace"`
	Associations domain.SchemaAssociations `json:"associations"`
}

// Publisher writes framed notifications to a single stream. Writes are
// serialized so interleaved publishes cannot corrupt the frame boundary.
type Publisher struct {
	mu  sync.Mutex
	out io.Writer
}

var _ ports.AssociationPublisher = (*Publisher)(nil)

func New(out io.Writer) *Publisher {
	return &Publisher{out: out}
}

func (p *Publisher) Publish(ctx context.Context, workspace string, associations domain.SchemaAssociations) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(notification{
		JSONRPC: "2.0",
		Method:  associationsMethod,
		Params: notificationParams{
			Workspace:    workspace,
			Associations: associations,
		},
	})
	if err != nil {
		return fmt.Errorf("encode association notification: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := fmt.Fprintf(p.out, "Content-Length: %d\r\n\r\n", len(payload)); err != nil {
		return fmt.Errorf("write notification header: %w", err)
	}
	if _, err := p.out.Write(payload); err != nil {
		return fmt.Errorf("write notification body: %w", err)
	}

	return nil
}
