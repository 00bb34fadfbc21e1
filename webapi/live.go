package webapi

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/thevuong/harvest/pkg/app"
	"github.com/thevuong/harvest/pkg/domain/fish"
	"github.com/thevuong/harvest/pkg/dto"
	"github.com/thevuong/harvest/pkg/livequery"
	"github.com/valyala/fasthttp"
)

// catalogueEvents are the commit notifications that invalidate a
// catalogue snapshot.
var catalogueEvents = []string{
	fish.EventFishCreated,
	fish.EventFishUpdated,
	fish.EventFishDeleted,
	fish.EventWeighingRecorded,
	fish.EventWeighingUpdated,
	fish.EventWeighingDeleted,
}

// LiveFish streams catalogue snapshots as Server-Sent Events: one on
// connect, then a fresh one after every committed change. The
// underlying live query is torn down when the client goes away.
func LiveFish(a *app.App) fiber.Handler {
	svc := a.FishService
	logger := a.Deps.Logger
	bus := a.Deps.EventBus

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/event-stream")
		c.Set(fiber.HeaderCacheControl, "no-cache")
		c.Set(fiber.HeaderConnection, "keep-alive")

		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			live := livequery.New(ctx, bus, catalogueEvents,
				func(ctx context.Context) ([]*dto.FishRead, error) {
					return svc.ListFish(ctx)
				}, logger)
			defer live.Close()

			fmt.Fprint(w, "event: connected\ndata: {\"status\": \"connected\"}\n\n")
			if err := w.Flush(); err != nil {
				return
			}

			for snapshot := range live.Updates() {
				data, err := json.Marshal(snapshot)
				if err != nil {
					logger.Error("failed to marshal catalogue snapshot", "error", err)
					continue
				}
				fmt.Fprintf(w, "event: fish\ndata: %s\n\n", data)
				if err := w.Flush(); err != nil {
					// client gone
					return
				}
			}
		}))
		return nil
	}
}
