package cli

import (
	"context"
	"fmt"
)

func (a *App) list(ctx context.Context) error {
	resp, err := a.client.List(ctx)
	if err != nil {
		return err
	}

	for _, p := range resp.Photos {
		fmt.Fprintf(a.out, "%s  %s  %d bytes  %s\n", p.ID, p.FileName, p.Size, p.URL)
	}
	fmt.Fprintf(a.out, "Total: %d\n", resp.Total)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: photokeeper delete <id>")
		return nil
	}

	if err := a.client.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", args[0])
	return nil
}

func (a *App) status(ctx context.Context) error {
	resp, err := a.client.Status(ctx)
	if err != nil {
		return err
	}

	state := "not configured"
	if resp.Configured {
		state = "configured"
	}
	fmt.Fprintf(a.out, "Storage: %s (bucket %q, endpoint %q)\n", state, resp.Bucket, resp.Endpoint)
	return nil
}
