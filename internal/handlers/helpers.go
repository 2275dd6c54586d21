package handlers

import (
	"encoding/json"

	"github.com/rashedq/repair-ops/internal/model"
	xhttp "github.com/rashedq/repair-ops/pkg/http"
)

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := ctx.PostBody()
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

func pathParam(ctx *xhttp.RequestCtx, name string) string {
	if v, ok := ctx.UserValue(name).(string); ok {
		return v
	}
	return ""
}

// actorFrom reads the authenticated identity the upstream session layer
// attaches as headers. An empty Actor simply skips audit attribution.
func actorFrom(ctx *xhttp.RequestCtx) model.Actor {
	return model.Actor{
		ID:    string(ctx.Request.Header.Peek("X-Actor-Id")),
		Email: string(ctx.Request.Header.Peek("X-Actor-Email")),
		Name:  string(ctx.Request.Header.Peek("X-Actor-Name")),
		Role:  model.Role(ctx.Request.Header.Peek("X-Actor-Role")),
	}
}
